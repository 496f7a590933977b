package vl53l5cx

import (
	"fmt"
)

// bozoFilter rejects an argument when cond is true. The message is returned
// verbatim so callers phrase it as the rule that was broken.
func bozoFilter(cond bool, msg string) error {

	if cond {
		return fmt.Errorf("%s", msg)
	}

	return nil
}

// rangeFilter rejects val when it falls outside the inclusive range lo to hi
func rangeFilter(val, lo, hi int, name string) error {

	if val < lo || val > hi {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, lo, hi, val)
	}

	return nil
}

// checkStatus turns an engine error into a facade error for the given
// operation. Operations marked lenient log the failure and report success,
// matching how the sensor is normally driven, strict operations wrap the
// error under label. Use WithStatusChecked to make a lenient operation
// strict.
func (v *VL53L5CX) checkStatus(op Operation, label string, err error) error {

	if err == nil {
		return nil
	}

	if v.lenient[op] {
		v.log.Printf("%s (ignored): %v", label, err)
		return nil
	}

	return fmt.Errorf("%s: %w", label, err)
}
