// Package fake provides an in-memory ranging engine for developing and
// testing against the VL53L5CX facade without hardware. The engine answers
// the full engine surface with deterministic synthetic frames, records
// every call for inspection and can be scripted to fail any operation
// with a chosen device status.
package fake

import (
	"github.com/swdee/go-vl53l5cx"
)

// Op names an engine operation, used for failure injection and call
// inspection
type Op string

const (
	OpIsAlive             Op = "is_alive"
	OpInit                Op = "init"
	OpSetResolution       Op = "set_resolution"
	OpSetTargetOrder      Op = "set_target_order"
	OpSetRangingMode      Op = "set_ranging_mode"
	OpSetRangingFrequency Op = "set_ranging_frequency"
	OpSetIntegrationTime  Op = "set_integration_time"
	OpIntegrationTime     Op = "integration_time"
	OpStartRanging        Op = "start_ranging"
	OpStopRanging         Op = "stop_ranging"
	OpDataReady           Op = "data_ready"
	OpRangingData         Op = "ranging_data"
	OpMotionInit          Op = "motion_indicator_init"
	OpMotionSetDistance   Op = "motion_indicator_set_distance"
	OpCalibrateXtalk      Op = "calibrate_xtalk"
	OpXtalkData           Op = "xtalk_data"
	OpSetXtalkData        Op = "set_xtalk_data"
)

// Engine is an in-memory ranging engine. Configuration pushed through the
// engine surface lands in the exported fields for tests to inspect. Not
// safe for concurrent use, matching the facade's contract.
type Engine struct {
	// Resolution, TargetOrder, RangingMode and RangingFrequency hold the
	// last engine values applied through their setters
	Resolution       uint8
	TargetOrder      uint8
	RangingMode      uint8
	RangingFrequency uint8

	// IntegrationTimeMs holds the last integration time applied, and is
	// what IntegrationTime reads back
	IntegrationTimeMs uint32

	// MotionResolution, MotionMin and MotionMax hold the last motion
	// indicator configuration applied
	MotionResolution uint8
	MotionMin        uint16
	MotionMax        uint16

	// CalReflectance, CalSamples and CalDistance hold the arguments of the
	// last CalibrateXtalk call
	CalReflectance uint8
	CalSamples     uint8
	CalDistance    uint16

	// Xtalk is the crosstalk calibration blob exchanged by XtalkData and
	// SetXtalkData
	Xtalk [vl53l5cx.XtalkDataSize]byte

	alive       bool
	initialized bool
	ranging     bool

	readyAfter int
	polls      int
	frame      uint8

	calls    []Op
	failures map[Op]vl53l5cx.Status
}

// New returns an engine that answers the liveness probe, ranges over a
// 4X4 grid and reports a frame ready on the first poll
func New() *Engine {
	return &Engine{
		alive:             true,
		Resolution:        vl53l5cx.RESOLUTION_4X4,
		TargetOrder:       vl53l5cx.TARGET_ORDER_STRONGEST,
		RangingMode:       vl53l5cx.RANGING_MODE_CONTINUOUS,
		IntegrationTimeMs: vl53l5cx.DefaultIntegrationTimeMs,
		failures:          make(map[Op]vl53l5cx.Status),
	}
}

// SetAlive controls the answer to the liveness probe
func (e *Engine) SetAlive(alive bool) {
	e.alive = alive
}

// ReadyAfter makes DataReady report false n times after each frame before
// reporting true, to exercise polling loops
func (e *Engine) ReadyAfter(n int) {
	e.readyAfter = n
}

// FailWith scripts op to fail with the given device status. Passing
// StatusOK clears the script for op.
func (e *Engine) FailWith(op Op, status vl53l5cx.Status) {

	if status == vl53l5cx.StatusOK {
		delete(e.failures, op)
		return
	}

	e.failures[op] = status
}

// Calls returns the operations invoked so far, in order
func (e *Engine) Calls() []Op {
	return append([]Op(nil), e.calls...)
}

// CallCount returns how many times op has been invoked
func (e *Engine) CallCount(op Op) int {

	n := 0

	for _, c := range e.calls {
		if c == op {
			n++
		}
	}

	return n
}

// Initialized reports whether Init has completed
func (e *Engine) Initialized() bool {
	return e.initialized
}

// Ranging reports whether ranging is active
func (e *Engine) Ranging() bool {
	return e.ranging
}

// record logs the call and returns the scripted failure for op, if any
func (e *Engine) record(op Op) error {

	e.calls = append(e.calls, op)

	if status, ok := e.failures[op]; ok {
		return &vl53l5cx.StatusFailure{Status: status}
	}

	return nil
}

// IsAlive reports whether the simulated sensor answers its identity probe
func (e *Engine) IsAlive() (bool, error) {

	if err := e.record(OpIsAlive); err != nil {
		return false, err
	}

	return e.alive, nil
}

// Init loads the simulated firmware
func (e *Engine) Init() error {

	if err := e.record(OpInit); err != nil {
		return err
	}

	e.initialized = true

	return nil
}

// SetResolution applies a resolution engine value
func (e *Engine) SetResolution(resolution uint8) error {

	if err := e.record(OpSetResolution); err != nil {
		return err
	}

	e.Resolution = resolution

	return nil
}

// SetTargetOrder applies a target order engine value
func (e *Engine) SetTargetOrder(order uint8) error {

	if err := e.record(OpSetTargetOrder); err != nil {
		return err
	}

	e.TargetOrder = order

	return nil
}

// SetRangingMode applies a ranging mode engine value
func (e *Engine) SetRangingMode(mode uint8) error {

	if err := e.record(OpSetRangingMode); err != nil {
		return err
	}

	e.RangingMode = mode

	return nil
}

// SetRangingFrequency sets the ranging frequency in Hz
func (e *Engine) SetRangingFrequency(hz uint8) error {

	if err := e.record(OpSetRangingFrequency); err != nil {
		return err
	}

	e.RangingFrequency = hz

	return nil
}

// SetIntegrationTime sets the per-frame integration time in milliseconds
func (e *Engine) SetIntegrationTime(ms uint32) error {

	if err := e.record(OpSetIntegrationTime); err != nil {
		return err
	}

	e.IntegrationTimeMs = ms

	return nil
}

// IntegrationTime reads back the integration time in milliseconds
func (e *Engine) IntegrationTime() (uint32, error) {

	if err := e.record(OpIntegrationTime); err != nil {
		return 0, err
	}

	return e.IntegrationTimeMs, nil
}

// StartRanging begins producing synthetic frames
func (e *Engine) StartRanging() error {

	if err := e.record(OpStartRanging); err != nil {
		return err
	}

	e.ranging = true
	e.polls = 0

	return nil
}

// StopRanging halts frame production
func (e *Engine) StopRanging() error {

	if err := e.record(OpStopRanging); err != nil {
		return err
	}

	e.ranging = false

	return nil
}

// DataReady reports whether a synthetic frame is pending. While ranging it
// reports false for the scripted number of polls, then true until the
// frame is collected by RangingData.
func (e *Engine) DataReady() (bool, error) {

	if err := e.record(OpDataReady); err != nil {
		return false, err
	}

	if !e.ranging {
		return false, nil
	}

	if e.polls < e.readyAfter {
		e.polls++
		return false, nil
	}

	return true, nil
}

// RangingData synthesizes the next frame into out. The pattern encodes
// the cell being read so tests can address any value: zone z target t
// measures 100*(t+1)+z millimeters with status 5 for the first target and
// 9 for the second, two targets per zone, signal (z+1+t)kcps/SPAD and
// sigma (t+1)mm in their raw fixed-point forms. The stream count starts
// at zero and increments per frame. Only cells within the configured
// resolution are written.
func (e *Engine) RangingData(out *vl53l5cx.ResultsData) error {

	if err := e.record(OpRangingData); err != nil {
		return err
	}

	out.StreamCount = e.frame

	zones := int(e.Resolution)

	for z := 0; z < zones; z++ {

		out.TargetsDetected[z] = 2
		out.AmbientPerSpad[z] = uint32(z) << 11
		out.SpadsEnabled[z] = uint32(256 + z)

		for t := 0; t < 2; t++ {
			i := z*vl53l5cx.TargetsPerZone + t

			out.DistanceMM[i] = int16(100*(t+1) + z)
			out.SignalPerSpad[i] = uint32(z+1+t) << 11
			out.RangeSigmaMM[i] = uint16(4 * (t + 1))

			if t == 0 {
				out.TargetStatus[i] = 5
			} else {
				out.TargetStatus[i] = 9
			}
		}
	}

	e.frame++
	e.polls = 0

	return nil
}

// MotionIndicatorInit prepares the motion indicator for the given
// resolution value
func (e *Engine) MotionIndicatorInit(resolution uint8) error {

	if err := e.record(OpMotionInit); err != nil {
		return err
	}

	e.MotionResolution = resolution

	return nil
}

// MotionIndicatorSetDistance configures the motion detection window
func (e *Engine) MotionIndicatorSetDistance(distanceMinMM, distanceMaxMM uint16) error {

	if err := e.record(OpMotionSetDistance); err != nil {
		return err
	}

	e.MotionMin = distanceMinMM
	e.MotionMax = distanceMaxMM

	return nil
}

// CalibrateXtalk records the calibration arguments and fills the xtalk
// blob with a pattern derived from them
func (e *Engine) CalibrateXtalk(reflectancePercent, samples uint8, distanceMM uint16) error {

	if err := e.record(OpCalibrateXtalk); err != nil {
		return err
	}

	e.CalReflectance = reflectancePercent
	e.CalSamples = samples
	e.CalDistance = distanceMM

	for i := range e.Xtalk {
		e.Xtalk[i] = byte(i) ^ reflectancePercent
	}

	return nil
}

// XtalkData copies the xtalk blob into data
func (e *Engine) XtalkData(data []byte) error {

	if err := e.record(OpXtalkData); err != nil {
		return err
	}

	copy(data, e.Xtalk[:])

	return nil
}

// SetXtalkData replaces the xtalk blob with data
func (e *Engine) SetXtalkData(data []byte) error {

	if err := e.record(OpSetXtalkData); err != nil {
		return err
	}

	copy(e.Xtalk[:], data)

	return nil
}

var _ vl53l5cx.Engine = (*Engine)(nil)
