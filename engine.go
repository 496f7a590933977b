package vl53l5cx

import (
	"errors"
	"fmt"
)

// Engine constants from the ULD API. The facade translates its public
// enums to these values before any engine call, so swapping in a different
// engine binding only touches the mapping in settings.go.
const (
	// Resolution values, also the zone count for that resolution
	RESOLUTION_4X4 uint8 = 16
	RESOLUTION_8X8 uint8 = 64

	// Target order values
	TARGET_ORDER_CLOSEST   uint8 = 1
	TARGET_ORDER_STRONGEST uint8 = 2

	// Ranging mode values
	RANGING_MODE_CONTINUOUS uint8 = 1
	RANGING_MODE_AUTONOMOUS uint8 = 3
)

// XtalkDataSize is the size in bytes of the crosstalk calibration blob
// exchanged with the engine.
const XtalkDataSize = 776

// Status is a status code reported by the ranging engine. Zero means
// success, anything else identifies the failure class defined by the ULD.
type Status uint8

const (
	StatusOK             Status = 0
	StatusTimeout        Status = 1
	StatusCorruptedFrame Status = 2
	StatusCRCFailed      Status = 3
	StatusXtalkFailed    Status = 4
	StatusMCUError       Status = 66
	StatusInvalidParam   Status = 127
	StatusError          Status = 255
)

// String implement Stringer interface for Status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTimeout:
		return "timeout"
	case StatusCorruptedFrame:
		return "corrupted frame"
	case StatusCRCFailed:
		return "crc/checksum failed"
	case StatusXtalkFailed:
		return "xtalk calibration failed"
	case StatusMCUError:
		return "mcu error"
	case StatusInvalidParam:
		return "invalid parameter"
	case StatusError:
		return "error"
	default:
		return "unknown status"
	}
}

// StatusFailure is the error returned by engine implementations when the
// device itself reports a non-zero status, as opposed to a transport error.
type StatusFailure struct {
	Status Status
}

// Error implements the error interface
func (e *StatusFailure) Error() string {
	return fmt.Sprintf("status 0x%02X (%s)", uint8(e.Status), e.Status)
}

// AsStatus extracts the engine status code from an error chain. The second
// return is false when err carries no device status, for example on a bus
// transport failure.
func AsStatus(err error) (Status, bool) {

	var sf *StatusFailure

	if errors.As(err, &sf) {
		return sf.Status, true
	}

	return 0, false
}

// Engine is the ranging engine behind the facade, one method per ULD entry
// point. Every method returns nil on status 0; device-reported failures are
// *StatusFailure, transport failures are ordinary errors. Implementations
// bind the vendor ULD through the platform package, or simulate it (see the
// fake package).
type Engine interface {
	// IsAlive reports whether a sensor answers on the bus
	IsAlive() (bool, error)

	// Init loads the device firmware and default configuration
	Init() error

	// SetResolution applies RESOLUTION_4X4 or RESOLUTION_8X8
	SetResolution(resolution uint8) error

	// SetTargetOrder applies TARGET_ORDER_CLOSEST or TARGET_ORDER_STRONGEST
	SetTargetOrder(order uint8) error

	// SetRangingMode applies RANGING_MODE_CONTINUOUS or RANGING_MODE_AUTONOMOUS
	SetRangingMode(mode uint8) error

	// SetRangingFrequency sets the ranging frequency in Hz
	SetRangingFrequency(hz uint8) error

	// SetIntegrationTime sets the per-frame integration time in milliseconds.
	// Only effective in autonomous ranging mode.
	SetIntegrationTime(ms uint32) error

	// IntegrationTime reads back the integration time in milliseconds
	IntegrationTime() (uint32, error)

	// StartRanging begins measurement
	StartRanging() error

	// StopRanging halts measurement
	StopRanging() error

	// DataReady polls for a completed frame without blocking
	DataReady() (bool, error)

	// RangingData copies the completed frame into out
	RangingData(out *ResultsData) error

	// MotionIndicatorInit prepares the motion indicator for the given
	// resolution value
	MotionIndicatorInit(resolution uint8) error

	// MotionIndicatorSetDistance configures the motion detection window
	// in millimeters
	MotionIndicatorSetDistance(distanceMinMM, distanceMaxMM uint16) error

	// CalibrateXtalk runs the crosstalk calibration routine against a target
	// of the given reflectance at the given distance
	CalibrateXtalk(reflectancePercent, samples uint8, distanceMM uint16) error

	// XtalkData copies the current crosstalk calibration blob into data,
	// which must be XtalkDataSize bytes
	XtalkData(data []byte) error

	// SetXtalkData uploads a previously saved crosstalk calibration blob
	SetXtalkData(data []byte) error
}
