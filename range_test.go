package vl53l5cx_test

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-vl53l5cx"
	"github.com/swdee/go-vl53l5cx/fake"
)

// captureSnapshot reads every accessor over the full grid so two
// measurement snapshots can be compared wholesale
func captureSnapshot(sensor *vl53l5cx.VL53L5CX) []int64 {

	out := []int64{int64(sensor.GetStreamCount())}

	for zone := 0; zone < vl53l5cx.MaxZones; zone++ {

		out = append(out,
			int64(sensor.GetTargetsDetected(zone)),
			int64(sensor.GetAmbientPerSpad(zone)),
			int64(sensor.GetSpadsEnabled(zone)))

		for target := 0; target < vl53l5cx.TargetsPerZone; target++ {
			out = append(out,
				int64(sensor.GetDistance(zone, target)),
				int64(sensor.GetTargetStatus(zone, target)),
				int64(sensor.GetSignalPerSpad(zone, target)),
				int64(sensor.GetRangeSigma(zone, target)))
		}
	}

	return out
}

func TestIsReady_NotReady(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	eng.ReadyAfter(2)

	sensor := newSensor(t, eng)
	require.NoError(t, sensor.Begin())

	for i := 0; i < 2; i++ {
		ready, err := sensor.IsReady()
		require.NoError(t, err)
		assert.False(t, ready)
	}

	// snapshot untouched while no frame was ready
	assert.Zero(t, sensor.GetDistance(0, 0))

	ready, err := sensor.IsReady()
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, int16(100), sensor.GetDistance(0, 0))

	// the collected frame rearms the gate, not-ready polls must now leave
	// the populated snapshot untouched
	before := captureSnapshot(sensor)

	for i := 0; i < 2; i++ {
		ready, err := sensor.IsReady()
		require.NoError(t, err)
		assert.False(t, ready)
		assert.Equal(t, before, captureSnapshot(sensor))
	}

	ready, err = sensor.IsReady()
	require.NoError(t, err)
	assert.True(t, ready)
	assert.NotEqual(t, before, captureSnapshot(sensor))
}

func TestIsReady_SnapshotValues(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	sensor := newSensor(t, eng)
	require.NoError(t, sensor.Begin())
	require.NoError(t, sensor.NextFrame())

	assert.Equal(t, uint8(0), sensor.GetStreamCount())

	// zone 5, both targets
	assert.Equal(t, int16(105), sensor.GetDistance(5, 0))
	assert.Equal(t, int16(205), sensor.GetDistance(5, 1))
	assert.Equal(t, uint8(5), sensor.GetTargetStatus(5, 0))
	assert.Equal(t, uint8(9), sensor.GetTargetStatus(5, 1))
	assert.True(t, vl53l5cx.TargetValid(sensor.GetTargetStatus(5, 0)))
	assert.Equal(t, uint8(2), sensor.GetTargetsDetected(5))

	// fixed point conversions
	assert.Equal(t, float32(4), vl53l5cx.SignalKcps(sensor.GetSignalPerSpad(2, 1)))
	assert.Equal(t, float32(2), vl53l5cx.SigmaMM(sensor.GetRangeSigma(0, 1)))
	assert.Equal(t, float32(3), vl53l5cx.SignalKcps(sensor.GetAmbientPerSpad(3)))
	assert.Equal(t, uint32(259), sensor.GetSpadsEnabled(3))
}

func TestIsReady_SnapshotOverwritten(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	sensor := newSensor(t, eng)
	require.NoError(t, sensor.Begin())

	require.NoError(t, sensor.NextFrame())
	assert.Equal(t, uint8(0), sensor.GetStreamCount())

	require.NoError(t, sensor.NextFrame())
	assert.Equal(t, uint8(1), sensor.GetStreamCount())
}

func TestIsReady_PollFailure(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	sensor := newSensor(t, eng)
	require.NoError(t, sensor.Begin())

	eng.FailWith(fake.OpDataReady, vl53l5cx.StatusTimeout)

	ready, err := sensor.IsReady()
	assert.False(t, ready)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data ready poll failed")

	status, ok := vl53l5cx.AsStatus(err)
	require.True(t, ok)
	assert.Equal(t, vl53l5cx.StatusTimeout, status)
}

func TestIsReady_ReadFailure(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	sensor := newSensor(t, eng)
	require.NoError(t, sensor.Begin())

	eng.FailWith(fake.OpRangingData, vl53l5cx.StatusCorruptedFrame)

	ready, err := sensor.IsReady()
	assert.False(t, ready)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ranging data read failed")
}

func TestStartRanging_StatusEmbedded(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	eng.FailWith(fake.OpStartRanging, vl53l5cx.StatusCorruptedFrame)

	err := newSensor(t, eng).Begin()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ranging start failed")
	assert.Contains(t, err.Error(), "status 0x02")

	status, ok := vl53l5cx.AsStatus(err)
	require.True(t, ok)
	assert.Equal(t, vl53l5cx.StatusCorruptedFrame, status)
}

func TestStopRanging_LenientByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	eng := fake.New()
	sensor := newSensor(t, eng, vl53l5cx.WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, sensor.Begin())

	eng.FailWith(fake.OpStopRanging, vl53l5cx.StatusError)

	// the stale stop status is dropped but logged
	assert.NoError(t, sensor.StopRanging())
	assert.Contains(t, buf.String(), "ranging stop failed (ignored)")
}

func TestStopRanging_StatusChecked(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	sensor := newSensor(t, eng, vl53l5cx.WithStatusChecked(vl53l5cx.OpStopRanging))
	require.NoError(t, sensor.Begin())

	eng.FailWith(fake.OpStopRanging, vl53l5cx.StatusError)

	err := sensor.StopRanging()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ranging stop failed")

	status, ok := vl53l5cx.AsStatus(err)
	require.True(t, ok)
	assert.Equal(t, vl53l5cx.StatusError, status)
}

func TestStopRanging_Halts(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	sensor := newSensor(t, eng)
	require.NoError(t, sensor.Begin())
	require.NoError(t, sensor.StopRanging())

	assert.False(t, eng.Ranging())
}

func TestNextFrame_PollsUntilReady(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	eng.ReadyAfter(3)

	sensor := newSensor(t, eng)
	sensor.SetPollInterval(time.Millisecond)
	require.NoError(t, sensor.Begin())

	require.NoError(t, sensor.NextFrame())
	assert.Equal(t, 4, eng.CallCount(fake.OpDataReady))
}

func TestNextFrame_Timeout(t *testing.T) {
	t.Parallel()

	eng := fake.New()
	eng.ReadyAfter(1 << 30)

	sensor := newSensor(t, eng)
	require.NoError(t, sensor.Begin())

	sensor.SetTimeout(20 * time.Millisecond)
	sensor.SetPollInterval(time.Millisecond)

	err := sensor.NextFrame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout waiting for ranging data")

	// the flag reads once then clears
	assert.True(t, sensor.TimeoutOccurred())
	assert.False(t, sensor.TimeoutOccurred())
}
