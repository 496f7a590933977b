package vl53l5cx

import (
	"fmt"
)

// AddMotionIndicator enables the motion indicator plugin at the configured
// resolution. When both distances are non-zero the detection window is set
// to distanceMinMM through distanceMaxMM, otherwise the plugin keeps its
// default window. The minimum distance must be at least 400mm and the
// window may span at most 1500mm.
func (v *VL53L5CX) AddMotionIndicator(distanceMinMM, distanceMaxMM uint16) error {

	res, err := v.resolution.engineValue()

	if err != nil {
		return err
	}

	if err := v.engine.MotionIndicatorInit(res); err != nil {
		return fmt.Errorf("motion indicator init failed: %w", err)
	}

	if distanceMinMM == 0 || distanceMaxMM == 0 {
		return nil
	}

	// Bozo filters for the detection window
	if err := bozoFilter(distanceMinMM < 400,
		"motion indicator minimum distance must be at least 400mm"); err != nil {
		return err
	}

	if err := bozoFilter(distanceMaxMM < distanceMinMM,
		"motion indicator maximum distance must be greater than minimum"); err != nil {
		return err
	}

	if err := bozoFilter(distanceMaxMM-distanceMinMM > 1500,
		"motion indicator maximum distance can be no greater than 1500mm above minimum distance"); err != nil {
		return err
	}

	if err := v.engine.MotionIndicatorSetDistance(distanceMinMM, distanceMaxMM); err != nil {
		return fmt.Errorf("motion indicator set distance failed: %w", err)
	}

	return nil
}
