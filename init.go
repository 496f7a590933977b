package vl53l5cx

import (
	"fmt"
	"time"
)

// resetHoldTime is how long the LPn line is held at each level during the
// hardware reset
const resetHoldTime = 100 * time.Millisecond

// Init prepares the sensor for ranging. It validates the configured
// ranging frequency, hardware resets the sensor over the LPn pin, verifies
// a sensor answers at the requested address, initializes the ranging
// engine and applies resolution, target order and ranging frequency.
func (v *VL53L5CX) Init() error {

	v.SetTimeout(time.Millisecond * 500)

	// Bozo filter for ranging frequency
	if err := v.checkRangingFrequency(); err != nil {
		return err
	}

	// Reset the sensor by toggling the LPn pin
	if err := v.resetSensor(); err != nil {
		return err
	}

	// Make sure there is a VL53L5CX sensor connected
	alive, err := v.engine.IsAlive()

	if err != nil {
		return fmt.Errorf("liveness check failed: %w", err)
	}

	if !alive {
		return fmt.Errorf("VL53L5CX not detected at requested address")
	}

	if err := v.engine.Init(); err != nil {
		return fmt.Errorf("ULD loading failed: %w", err)
	}

	return v.applySettings()
}

// checkRangingFrequency validates the configured ranging frequency against
// the ceiling for the configured resolution, 60Hz at 4X4 and 15Hz at 8X8
func (v *VL53L5CX) checkRangingFrequency() error {

	maxval := v.resolution.maxRangingFrequency()

	if v.rangingFrequency < 1 || v.rangingFrequency > maxval {
		return fmt.Errorf("ranging frequency for %s resolution must be at least 1 and no more than %d, got %d",
			v.resolution, maxval, v.rangingFrequency)
	}

	return nil
}

// resetSensor toggles the LPn pin low then high, holding each level for
// resetHoldTime. Skipped when no reset pin is configured, for boards that
// strap LPn high.
func (v *VL53L5CX) resetSensor() error {

	if v.resetPin == nil {
		return nil
	}

	v.log.Printf("Resetting sensor over LPn")

	if err := v.resetPin.Set(false); err != nil {
		return fmt.Errorf("reset pin low failed: %w", err)
	}

	time.Sleep(resetHoldTime)

	if err := v.resetPin.Set(true); err != nil {
		return fmt.Errorf("reset pin high failed: %w", err)
	}

	time.Sleep(resetHoldTime)

	return nil
}

// applySettings pushes the configured resolution, target order and ranging
// frequency to the engine
func (v *VL53L5CX) applySettings() error {

	res, err := v.resolution.engineValue()

	if err != nil {
		return err
	}

	if err := v.engine.SetResolution(res); err != nil {
		return fmt.Errorf("set resolution failed: %w", err)
	}

	order, err := v.targetOrder.engineValue()

	if err != nil {
		return err
	}

	if err := v.engine.SetTargetOrder(order); err != nil {
		return fmt.Errorf("set target order failed: %w", err)
	}

	if err := v.engine.SetRangingFrequency(v.rangingFrequency); err != nil {
		return fmt.Errorf("set ranging frequency failed: %w", err)
	}

	return nil
}

// applyAutonomous switches the engine to autonomous ranging mode and sets
// the per-frame integration time. The integration time write falls under
// the OpSetIntegrationTime leniency, see WithStatusChecked.
func (v *VL53L5CX) applyAutonomous() error {

	if err := v.engine.SetRangingMode(RANGING_MODE_AUTONOMOUS); err != nil {
		return fmt.Errorf("set ranging mode failed: %w", err)
	}

	err := v.engine.SetIntegrationTime(v.integrationTimeMs)

	return v.checkStatus(OpSetIntegrationTime, "set integration time failed", err)
}
