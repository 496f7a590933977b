// go-vl53l5cx is a driver for the ST VL53L5CX multizone time-of-flight
// sensor. It is a validating facade over a pluggable ranging engine (the
// vendor ULD or the bundled fake), handling configuration, polling and
// typed access to the per-zone measurement data.
package vl53l5cx

import (
	"fmt"
	"io"
	"log"
	"time"
)

const (
	// Address is the default 7-bit address of the sensor on the I2C bus.
	// Datasheets quote the 8-bit form 0x52.
	Address uint8 = 0x29

	// DefaultIntegrationTimeMs is the integration time the sensor powers
	// up with
	DefaultIntegrationTimeMs uint32 = 5
)

// ResetPin drives the sensor's LPn line for the hardware reset performed
// during Init. The platform package has adapters for common GPIO stacks.
type ResetPin interface {
	// Set drives the pin high or low
	Set(high bool) error
}

// ResetPinFunc adapts a plain function to the ResetPin interface
type ResetPinFunc func(high bool) error

// Set implements ResetPin
func (f ResetPinFunc) Set(high bool) error {
	return f(high)
}

// VL53L5CX represents a single VL53L5CX sensor instance. It is not safe
// for concurrent use; callers running the polling loop from a different
// goroutine than the accessors must serialise access themselves.
type VL53L5CX struct {
	// engine is the ranging engine behind the facade
	engine Engine

	address          uint8
	resetPin         ResetPin
	resolution       Resolution
	targetOrder      TargetOrder
	rangingFrequency uint8
	rangingMode      RangingMode
	// integration time in milliseconds, applied during an autonomous Begin
	integrationTimeMs uint32

	// lenient holds the operations whose engine status is dropped rather
	// than returned
	lenient map[Operation]bool

	ioTimeout    time.Duration
	didTimeout   bool
	timeoutStart time.Time
	pollInterval time.Duration

	results ResultsData

	// log logger for debugging
	log *log.Logger
}

// Option configures a sensor instance during New
type Option func(*VL53L5CX)

// WithAddress sets the 7-bit bus address recorded for the sensor, Address
// by default. The engine binding owns the actual bus connection, so the
// value is recorded configuration, read back through GetAddress.
func WithAddress(addr uint8) Option {
	return func(v *VL53L5CX) {
		v.address = addr
	}
}

// WithResolution selects the zone grid, Resolution4x4 by default
func WithResolution(r Resolution) Option {
	return func(v *VL53L5CX) {
		v.resolution = r
	}
}

// WithTargetOrder selects the in-zone target ordering, OrderStrongest by
// default
func WithTargetOrder(o TargetOrder) Option {
	return func(v *VL53L5CX) {
		v.targetOrder = o
	}
}

// WithRangingFrequency sets the ranging frequency in Hz, 1Hz by default.
// The value is validated against the resolution-specific ceiling during
// Init, not here.
func WithRangingFrequency(hz uint8) Option {
	return func(v *VL53L5CX) {
		v.rangingFrequency = hz
	}
}

// WithResetPin supplies the LPn reset pin toggled during Init. Without one
// the hardware reset is skipped, for boards strapping LPn high.
func WithResetPin(pin ResetPin) Option {
	return func(v *VL53L5CX) {
		v.resetPin = pin
	}
}

// WithLogger sets a logger to be used for debugging
func WithLogger(log *log.Logger) Option {
	return func(v *VL53L5CX) {
		v.log = log
	}
}

// WithStatusChecked makes the given operation return engine status errors
// instead of dropping them. StopRanging() and the integration time write
// of an autonomous Begin() ignore their status by default.
func WithStatusChecked(op Operation) Option {
	return func(v *VL53L5CX) {
		v.lenient[op] = false
	}
}

// New returns a new VL53L5CX sensor instance over the given ranging
// engine. No hardware is touched until Begin or Init.
func New(engine Engine, opts ...Option) (*VL53L5CX, error) {

	if engine == nil {
		return nil, fmt.Errorf("ranging engine is not initiated")
	}

	v := &VL53L5CX{
		engine:            engine,
		address:           Address,
		resolution:        Resolution4x4,
		targetOrder:       OrderStrongest,
		rangingFrequency:  1,
		rangingMode:       ModeContinuous,
		integrationTimeMs: DefaultIntegrationTimeMs,
		pollInterval:      time.Millisecond,
		lenient: map[Operation]bool{
			OpStopRanging:        true,
			OpSetIntegrationTime: true,
		},
		// create null logger
		log: log.New(io.Discard, "", log.LstdFlags),
	}

	for _, opt := range opts {
		opt(v)
	}

	if _, err := v.resolution.engineValue(); err != nil {
		return nil, err
	}

	if _, err := v.targetOrder.engineValue(); err != nil {
		return nil, err
	}

	return v, nil
}

// NewAutonomous returns a sensor instance configured for autonomous
// ranging mode with the given per-frame integration time in milliseconds.
// Autonomous mode is the only mode in which the integration time can be
// changed, so it is part of construction rather than a setter.
func NewAutonomous(engine Engine, integrationTimeMs uint32, opts ...Option) (*VL53L5CX, error) {

	v, err := New(engine, opts...)

	if err != nil {
		return nil, err
	}

	v.rangingMode = ModeAutonomous
	v.integrationTimeMs = integrationTimeMs

	return v, nil
}

// Begin initializes the sensor and starts ranging. After a successful
// Begin the caller polls IsReady, or calls NextFrame, and reads zones
// through the accessors.
func (v *VL53L5CX) Begin() error {

	if err := v.Init(); err != nil {
		return err
	}

	if v.rangingMode == ModeAutonomous {
		if err := v.applyAutonomous(); err != nil {
			return err
		}
	}

	return v.StartRanging()
}
