package vl53l5cx

import "fmt"

// Resolution selects the zone grid the sensor ranges over
type Resolution int

const (
	// Resolution4x4 ranges over a 4x4 grid of 16 zones, supporting ranging
	// frequencies up to 60Hz
	Resolution4x4 Resolution = iota
	// Resolution8x8 ranges over an 8x8 grid of 64 zones, supporting ranging
	// frequencies up to 15Hz
	Resolution8x8
)

// Zones returns the number of zones in the grid
func (r Resolution) Zones() int {

	if r == Resolution8x8 {
		return 64
	}

	return 16
}

// maxRangingFrequency returns the highest ranging frequency in Hz supported
// at this resolution
func (r Resolution) maxRangingFrequency() uint8 {

	if r == Resolution8x8 {
		return 15
	}

	return 60
}

// engineValue translates the resolution to its engine constant
func (r Resolution) engineValue() (uint8, error) {

	switch r {
	case Resolution4x4:
		return RESOLUTION_4X4, nil
	case Resolution8x8:
		return RESOLUTION_8X8, nil
	default:
		return 0, fmt.Errorf("unrecognized resolution")
	}
}

// String implement Stringer interface for Resolution
func (r Resolution) String() string {
	switch r {
	case Resolution4x4:
		return "4X4"
	case Resolution8x8:
		return "8X8"
	default:
		return "unknown resolution"
	}
}

// TargetOrder selects how targets within a zone are sorted in the results
type TargetOrder int

const (
	// OrderStrongest reports the target with the strongest return signal
	// first. This is the sensor default.
	OrderStrongest TargetOrder = iota
	// OrderClosest reports the nearest target first
	OrderClosest
)

// engineValue translates the target order to its engine constant
func (o TargetOrder) engineValue() (uint8, error) {

	switch o {
	case OrderStrongest:
		return TARGET_ORDER_STRONGEST, nil
	case OrderClosest:
		return TARGET_ORDER_CLOSEST, nil
	default:
		return 0, fmt.Errorf("unrecognized target order")
	}
}

// String implement Stringer interface for TargetOrder
func (o TargetOrder) String() string {
	switch o {
	case OrderStrongest:
		return "strongest"
	case OrderClosest:
		return "closest"
	default:
		return "unknown target order"
	}
}

// RangingMode selects between the sensor's two ranging modes
type RangingMode int

const (
	// ModeContinuous ranges back to back at the configured frequency with a
	// fixed integration time. The device powers up in this mode so the
	// facade never transmits it.
	ModeContinuous RangingMode = iota
	// ModeAutonomous ranges at the configured frequency with a tunable
	// per-frame integration time, idling between frames
	ModeAutonomous
)

// String implement Stringer interface for RangingMode
func (m RangingMode) String() string {
	switch m {
	case ModeContinuous:
		return "continuous"
	case ModeAutonomous:
		return "autonomous"
	default:
		return "unknown ranging mode"
	}
}

// Operation identifies a facade operation whose engine status checking can
// be toggled, see WithStatusChecked
type Operation int

const (
	// OpStopRanging is the engine stop call made by StopRanging()
	OpStopRanging Operation = iota
	// OpSetIntegrationTime is the integration time engine call made during
	// an autonomous Begin()
	OpSetIntegrationTime
)

// GetAddress returns the configured 7-bit bus address
func (v *VL53L5CX) GetAddress() uint8 {
	return v.address
}

// GetResolution returns the configured resolution
func (v *VL53L5CX) GetResolution() Resolution {
	return v.resolution
}

// GetTargetOrder returns the configured target order
func (v *VL53L5CX) GetTargetOrder() TargetOrder {
	return v.targetOrder
}

// GetRangingMode returns the configured ranging mode
func (v *VL53L5CX) GetRangingMode() RangingMode {
	return v.rangingMode
}

// GetIntegrationTimeMs reads the current per-frame integration time in
// milliseconds from the engine
func (v *VL53L5CX) GetIntegrationTimeMs() (uint32, error) {

	ms, err := v.engine.IntegrationTime()

	if err != nil {
		return 0, fmt.Errorf("integration time read failed: %w", err)
	}

	return ms, nil
}
