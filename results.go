package vl53l5cx

const (
	// MaxZones is the zone count of the 8X8 resolution, the largest grid
	// the sensor supports
	MaxZones = 64

	// TargetsPerZone is the number of target slots per zone in a results
	// snapshot. ULD builds carry between 1 and 4 targets per zone; this
	// binding always sizes for 4 and engines built for fewer fill the
	// leading slots.
	TargetsPerZone = 4
)

// ResultsData is one complete frame of measurements, written wholesale by
// the engine on each successful poll. Per-target values are flat arrays
// indexed zone*TargetsPerZone+target, per-zone values are indexed by zone.
// Cells past the configured resolution keep whatever the previous frame
// left there.
type ResultsData struct {
	// StreamCount is a rolling counter incremented by the sensor on every
	// frame, wrapping at 255
	StreamCount uint8

	// DistanceMM is the measured distance per target in millimeters.
	// Slightly negative values can occur for targets closer than the
	// calibration distance.
	DistanceMM [MaxZones * TargetsPerZone]int16

	// TargetStatus is the measurement validity per target. Status 5 and 9
	// indicate a valid range, 255 means no target.
	TargetStatus [MaxZones * TargetsPerZone]uint8

	// SignalPerSpad is the return signal rate per target in kcps/SPAD,
	// 21.11 fixed point
	SignalPerSpad [MaxZones * TargetsPerZone]uint32

	// RangeSigmaMM is the estimated measurement noise per target in
	// millimeters, 14.2 fixed point
	RangeSigmaMM [MaxZones * TargetsPerZone]uint16

	// TargetsDetected is the number of targets found in each zone
	TargetsDetected [MaxZones]uint8

	// AmbientPerSpad is the ambient light rate per zone in kcps/SPAD,
	// 21.11 fixed point
	AmbientPerSpad [MaxZones]uint32

	// SpadsEnabled is the number of SPADs enabled per zone
	SpadsEnabled [MaxZones]uint32
}

// targetIndex flattens a zone and target pair into the per-target arrays
func targetIndex(zone, target int) int {
	return zone*TargetsPerZone + target
}

// TargetValid reports whether a target status value indicates a valid
// range measurement
func TargetValid(status uint8) bool {
	return status == 5 || status == 9
}

// SignalKcps converts a raw signal or ambient rate from 21.11 fixed point
// to kcps/SPAD
func SignalKcps(raw uint32) float32 {
	return float32(raw) / float32(1<<11)
}

// SigmaMM converts a raw range sigma from 14.2 fixed point to millimeters
func SigmaMM(raw uint16) float32 {
	return float32(raw) / float32(1<<2)
}

// The accessors below are plain reads from the snapshot taken by the last
// successful IsReady poll and never touch the engine. Indices are not
// validated against the configured resolution: a zone or target outside it
// reads a stale or zero cell, matching the flat ULD buffer behaviour.

// GetStreamCount returns the sensor frame counter from the last snapshot
func (v *VL53L5CX) GetStreamCount() uint8 {
	return v.results.StreamCount
}

// GetTargetStatus returns the measurement validity for one target
func (v *VL53L5CX) GetTargetStatus(zone, target int) uint8 {
	return v.results.TargetStatus[targetIndex(zone, target)]
}

// GetDistance returns the measured distance in millimeters for one target
func (v *VL53L5CX) GetDistance(zone, target int) int16 {
	return v.results.DistanceMM[targetIndex(zone, target)]
}

// GetSignalPerSpad returns the raw return signal rate for one target,
// 21.11 fixed point. Use SignalKcps to convert.
func (v *VL53L5CX) GetSignalPerSpad(zone, target int) uint32 {
	return v.results.SignalPerSpad[targetIndex(zone, target)]
}

// GetRangeSigma returns the raw range noise estimate for one target,
// 14.2 fixed point. Use SigmaMM to convert.
func (v *VL53L5CX) GetRangeSigma(zone, target int) uint16 {
	return v.results.RangeSigmaMM[targetIndex(zone, target)]
}

// GetTargetsDetected returns the number of targets found in a zone
func (v *VL53L5CX) GetTargetsDetected(zone int) uint8 {
	return v.results.TargetsDetected[zone]
}

// GetAmbientPerSpad returns the raw ambient light rate for a zone,
// 21.11 fixed point. Use SignalKcps to convert.
func (v *VL53L5CX) GetAmbientPerSpad(zone int) uint32 {
	return v.results.AmbientPerSpad[zone]
}

// GetSpadsEnabled returns the number of SPADs enabled in a zone
func (v *VL53L5CX) GetSpadsEnabled(zone int) uint32 {
	return v.results.SpadsEnabled[zone]
}
