package vl53l5cx

import "time"

// SetTimeout sets how long NextFrame waits for a frame before giving up.
// A zero duration waits forever.
func (v *VL53L5CX) SetTimeout(timeout time.Duration) {
	v.ioTimeout = timeout
}

// SetPollInterval sets how long NextFrame sleeps between data ready polls
func (v *VL53L5CX) SetPollInterval(interval time.Duration) {
	v.pollInterval = interval
}

// TimeoutOccurred reports whether a timeout has occurred since the last
// call to TimeoutOccurred
func (v *VL53L5CX) TimeoutOccurred() bool {
	tmp := v.didTimeout
	v.didTimeout = false
	return tmp
}

// startTimeout starts the timeout counter
func (v *VL53L5CX) startTimeout() {
	v.timeoutStart = time.Now()
}

// checkTimeoutExpired checks if timeout has expired
func (v *VL53L5CX) checkTimeoutExpired() bool {
	return (v.ioTimeout > 0) && (time.Since(v.timeoutStart) > v.ioTimeout)
}
