package vl53l5cx

import (
	"fmt"
	"time"
)

// StartRanging begins streaming frames at the configured ranging frequency
func (v *VL53L5CX) StartRanging() error {

	v.log.Print("Start ranging")

	if err := v.engine.StartRanging(); err != nil {
		return fmt.Errorf("ranging start failed: %w", err)
	}

	return nil
}

// StopRanging halts the frame stream. The sensor tends to report a stale
// status on stop even though ranging does halt, so failures are ignored
// by default. Use WithStatusChecked(OpStopRanging) to surface them.
func (v *VL53L5CX) StopRanging() error {

	v.log.Print("Stop ranging")

	err := v.engine.StopRanging()

	return v.checkStatus(OpStopRanging, "ranging stop failed", err)
}

// IsReady polls the sensor once. When a new frame is available it is read
// into the measurement snapshot, replacing the previous frame, and IsReady
// reports true. When no frame is pending the snapshot is left untouched
// and IsReady reports false.
func (v *VL53L5CX) IsReady() (bool, error) {

	ready, err := v.engine.DataReady()

	if err != nil {
		return false, fmt.Errorf("data ready poll failed: %w", err)
	}

	if !ready {
		return false, nil
	}

	if err := v.engine.RangingData(&v.results); err != nil {
		return false, fmt.Errorf("ranging data read failed: %w", err)
	}

	return true, nil
}

// NextFrame blocks until the next frame has been read into the measurement
// snapshot. It polls IsReady every poll interval and gives up after the
// configured timeout, see SetTimeout and SetPollInterval.
func (v *VL53L5CX) NextFrame() error {

	v.startTimeout()

	for {
		ready, err := v.IsReady()

		if err != nil {
			return err
		}

		if ready {
			return nil
		}

		if v.checkTimeoutExpired() {
			v.didTimeout = true
			return fmt.Errorf("timeout waiting for ranging data")
		}

		time.Sleep(v.pollInterval)
	}
}
