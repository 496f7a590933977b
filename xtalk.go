package vl53l5cx

import (
	"fmt"
)

// CalibrateXtalk runs the crosstalk calibration routine against a target of
// the given reflectance held at the given distance. Reflectance must be
// 1 to 99 percent, samples 1 to 16 and distance 600 to 3000mm, ST suggests
// a 3% grey target at 600mm. Ranging must not be active during calibration.
func (v *VL53L5CX) CalibrateXtalk(reflectancePercent, samples uint8, distanceMM uint16) error {

	if err := rangeFilter(int(reflectancePercent), 1, 99, "reflectance percent"); err != nil {
		return err
	}

	if err := rangeFilter(int(samples), 1, 16, "number of samples"); err != nil {
		return err
	}

	if err := rangeFilter(int(distanceMM), 600, 3000, "distance"); err != nil {
		return err
	}

	if err := v.engine.CalibrateXtalk(reflectancePercent, samples, distanceMM); err != nil {
		return fmt.Errorf("xtalk calibration failed: %w", err)
	}

	return nil
}

// GetXtalkCalibrationData reads the current crosstalk calibration blob into
// buf, which must be exactly XtalkDataSize bytes. The blob is opaque and
// only meaningful to SetXtalkCalibrationData.
func (v *VL53L5CX) GetXtalkCalibrationData(buf []byte) error {

	if len(buf) != XtalkDataSize {
		return fmt.Errorf("xtalk calibration data must be %d bytes, got %d", XtalkDataSize, len(buf))
	}

	if err := v.engine.XtalkData(buf); err != nil {
		return fmt.Errorf("xtalk calibration data read failed: %w", err)
	}

	return nil
}

// SetXtalkCalibrationData restores a crosstalk calibration blob previously
// read with GetXtalkCalibrationData, so a factory calibration can be
// replayed without rerunning CalibrateXtalk.
func (v *VL53L5CX) SetXtalkCalibrationData(buf []byte) error {

	if len(buf) != XtalkDataSize {
		return fmt.Errorf("xtalk calibration data must be %d bytes, got %d", XtalkDataSize, len(buf))
	}

	if err := v.engine.SetXtalkData(buf); err != nil {
		return fmt.Errorf("xtalk calibration data write failed: %w", err)
	}

	return nil
}
