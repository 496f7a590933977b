package fake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-vl53l5cx"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	eng := New()

	alive, err := eng.IsAlive()
	require.NoError(t, err)
	assert.True(t, alive)

	assert.Equal(t, vl53l5cx.RESOLUTION_4X4, eng.Resolution)
	assert.Equal(t, vl53l5cx.DefaultIntegrationTimeMs, eng.IntegrationTimeMs)
	assert.False(t, eng.Initialized())
	assert.False(t, eng.Ranging())
}

func TestDataReady_Gating(t *testing.T) {
	t.Parallel()

	eng := New()
	eng.ReadyAfter(2)

	// nothing pending before ranging starts
	ready, err := eng.DataReady()
	require.NoError(t, err)
	assert.False(t, ready)

	require.NoError(t, eng.StartRanging())

	for i := 0; i < 2; i++ {
		ready, err := eng.DataReady()
		require.NoError(t, err)
		assert.False(t, ready)
	}

	ready, err = eng.DataReady()
	require.NoError(t, err)
	assert.True(t, ready)

	// collecting the frame restarts the gate
	var out vl53l5cx.ResultsData
	require.NoError(t, eng.RangingData(&out))

	ready, err = eng.DataReady()
	require.NoError(t, err)
	assert.False(t, ready)
}

func TestRangingData_Pattern(t *testing.T) {
	t.Parallel()

	eng := New()
	require.NoError(t, eng.StartRanging())

	var out vl53l5cx.ResultsData
	require.NoError(t, eng.RangingData(&out))

	assert.Equal(t, uint8(0), out.StreamCount)

	// zone 0
	assert.Equal(t, int16(100), out.DistanceMM[0])
	assert.Equal(t, int16(200), out.DistanceMM[1])
	assert.Equal(t, uint8(5), out.TargetStatus[0])
	assert.Equal(t, uint8(9), out.TargetStatus[1])
	assert.Equal(t, uint8(2), out.TargetsDetected[0])

	// zone 15, last of the 4X4 grid
	idx := 15 * vl53l5cx.TargetsPerZone
	assert.Equal(t, int16(115), out.DistanceMM[idx])

	require.NoError(t, eng.RangingData(&out))
	assert.Equal(t, uint8(1), out.StreamCount)
}

func TestRangingData_RespectsResolution(t *testing.T) {
	t.Parallel()

	eng := New()
	require.NoError(t, eng.StartRanging())

	var out vl53l5cx.ResultsData
	require.NoError(t, eng.RangingData(&out))

	// zone 20 is outside the 4X4 grid
	assert.Zero(t, out.DistanceMM[20*vl53l5cx.TargetsPerZone])

	require.NoError(t, eng.SetResolution(vl53l5cx.RESOLUTION_8X8))
	require.NoError(t, eng.RangingData(&out))

	assert.Equal(t, int16(120), out.DistanceMM[20*vl53l5cx.TargetsPerZone])
	assert.Equal(t, int16(163), out.DistanceMM[63*vl53l5cx.TargetsPerZone])
}

func TestFailWith(t *testing.T) {
	t.Parallel()

	eng := New()
	eng.FailWith(OpInit, vl53l5cx.StatusMCUError)

	err := eng.Init()
	require.Error(t, err)

	status, ok := vl53l5cx.AsStatus(err)
	require.True(t, ok)
	assert.Equal(t, vl53l5cx.StatusMCUError, status)
	assert.False(t, eng.Initialized())

	// StatusOK clears the script
	eng.FailWith(OpInit, vl53l5cx.StatusOK)
	require.NoError(t, eng.Init())
	assert.True(t, eng.Initialized())
}

func TestCallRecording(t *testing.T) {
	t.Parallel()

	eng := New()

	_, _ = eng.IsAlive()
	_ = eng.Init()
	_ = eng.StartRanging()
	_, _ = eng.DataReady()
	_, _ = eng.DataReady()

	assert.Equal(t, []Op{OpIsAlive, OpInit, OpStartRanging, OpDataReady, OpDataReady}, eng.Calls())
	assert.Equal(t, 2, eng.CallCount(OpDataReady))
	assert.Zero(t, eng.CallCount(OpStopRanging))
}

func TestXtalkBlob(t *testing.T) {
	t.Parallel()

	eng := New()

	blob := make([]byte, vl53l5cx.XtalkDataSize)
	for i := range blob {
		blob[i] = byte(i * 3)
	}

	require.NoError(t, eng.SetXtalkData(blob))

	got := make([]byte, vl53l5cx.XtalkDataSize)
	require.NoError(t, eng.XtalkData(got))
	assert.Equal(t, blob, got)

	// calibration rewrites the blob from its arguments
	require.NoError(t, eng.CalibrateXtalk(3, 4, 600))
	require.NoError(t, eng.XtalkData(got))
	assert.NotEqual(t, blob, got)
	assert.Equal(t, byte(1)^byte(3), got[1])

	assert.Equal(t, uint8(3), eng.CalReflectance)
	assert.Equal(t, uint8(4), eng.CalSamples)
	assert.Equal(t, uint16(600), eng.CalDistance)
}
