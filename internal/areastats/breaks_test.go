package areastats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualInterval_OneToTen(t *testing.T) {
	interval, err := EqualInterval(oneToTen(), 4)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, interval, 1e-9)

	breaks, err := EqualIntervalBreaks(oneToTen(), 4, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 3.25, 5.5, 7.75, 10}, []float64(breaks), 1e-9)

	trimmed, err := EqualIntervalBreaks(oneToTen(), 4, true)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3.25, 5.5, 7.75}, []float64(trimmed), 1e-9)
}

func TestEqualInterval_InvalidClassCount(t *testing.T) {
	_, err := EqualInterval(oneToTen(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EqualIntervalBreaks(nil, 4, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEqualIntervalBreaks_LengthAndOrder(t *testing.T) {
	for _, areas := range randomDistributions(t, 100) {
		for k := 1; k <= 6; k++ {
			full, err := EqualIntervalBreaks(areas, k, false)
			require.NoError(t, err)
			require.Len(t, full, k+1)
			assertNonDecreasing(t, full)

			trimmed, err := EqualIntervalBreaks(areas, k, true)
			require.NoError(t, err)
			assert.Len(t, trimmed, k-1)
		}
	}
}

func TestJenksBreaks_Clusters(t *testing.T) {
	areas := []float64{21, 1, 11, 3, 20, 2, 10, 12, 22}

	breaks, err := JenksBreaks(areas, 3, false)
	require.NoError(t, err)
	assert.Equal(t, Breaks{1, 3, 12, 22}, breaks)

	trimmed, err := JenksBreaks(areas, 3, true)
	require.NoError(t, err)
	assert.Equal(t, Breaks{3, 12}, trimmed)
}

func TestJenksBreaks_OneToTen(t *testing.T) {
	breaks, err := JenksBreaks(oneToTen(), 4, false)
	require.NoError(t, err)
	assert.Equal(t, Breaks{1, 2, 4, 7, 10}, breaks)
}

func TestJenksBreaks_OneClassPerValue(t *testing.T) {
	breaks, err := JenksBreaks([]float64{5, 1, 4, 2, 3}, 5, false)
	require.NoError(t, err)
	assert.Equal(t, Breaks{1, 1, 2, 3, 4, 5}, breaks)
}

func TestJenksBreaks_SingleClass(t *testing.T) {
	breaks, err := JenksBreaks([]float64{4, 8, 6}, 1, false)
	require.NoError(t, err)
	assert.Equal(t, Breaks{4, 8}, breaks)

	trimmed, err := JenksBreaks([]float64{4, 8, 6}, 1, true)
	require.NoError(t, err)
	assert.Empty(t, trimmed)
}

func TestJenksBreaks_AllEqual(t *testing.T) {
	breaks, err := JenksBreaks([]float64{7, 7, 7, 7, 7}, 4, false)
	require.NoError(t, err)
	assert.Equal(t, Breaks{7, 7, 7, 7, 7}, breaks)
}

func TestJenksBreaks_AllEqualFewerValuesThanClasses(t *testing.T) {
	breaks, err := JenksBreaks([]float64{5, 5, 5}, 4, false)
	require.NoError(t, err)
	assert.Equal(t, Breaks{5, 5, 5, 5, 5}, breaks)

	trimmed, err := JenksBreaks([]float64{5}, 4, true)
	require.NoError(t, err)
	assert.Equal(t, Breaks{5, 5, 5}, trimmed)
}

func TestJenksBreaks_Ties(t *testing.T) {
	breaks, err := JenksBreaks([]float64{1, 1, 1, 5}, 3, false)
	require.NoError(t, err)
	assert.Equal(t, Breaks{1, 1, 1, 5}, breaks)
}

func TestJenksBreaks_InvalidClassCount(t *testing.T) {
	_, err := JenksBreaks([]float64{1, 2, 3}, 4, false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = JenksBreaks([]float64{1, 2, 3}, 0, false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = JenksBreaks(nil, 2, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJenksBreaks_Properties(t *testing.T) {
	for _, areas := range randomDistributions(t, 120) {
		s, err := Summarize(areas)
		require.NoError(t, err)
		for k := 1; k <= min(5, len(areas)); k++ {
			breaks, err := JenksBreaks(areas, k, false)
			require.NoError(t, err)
			require.Len(t, breaks, k+1)
			assertNonDecreasing(t, breaks)
			assert.Equal(t, s.Min, breaks[0])
			assert.Equal(t, s.Max, breaks[k])

			again, err := JenksBreaks(areas, k, false)
			require.NoError(t, err)
			assert.Equal(t, breaks, again, "breaks must be deterministic")
		}
	}
}

func TestGoodnessOfVarianceFit(t *testing.T) {
	areas := []float64{1, 2, 3, 10, 11, 12, 20, 21, 22}

	gvf, err := GoodnessOfVarianceFit(areas, Breaks{1, 3, 12, 22})
	require.NoError(t, err)
	assert.InDelta(t, 1-6.0/548.0, gvf, 1e-9)

	single, err := GoodnessOfVarianceFit(areas, Breaks{1, 22})
	require.NoError(t, err)
	assert.InDelta(t, 0, single, 1e-9)

	flat, err := GoodnessOfVarianceFit([]float64{3, 3}, Breaks{3, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1, flat, 1e-9)

	_, err = GoodnessOfVarianceFit(areas, Breaks{5, 22})
	assert.ErrorIs(t, err, ErrClassification)
}

func TestBreaks_TrimAndBounds(t *testing.T) {
	b := Breaks{1, 2, 3, 4}
	assert.Equal(t, 3, b.Classes())
	assert.Equal(t, Breaks{2, 3}, b.Trim())
	assert.Equal(t, Breaks{1, 2, 3, 4}, b.Trim().WithBounds(1, 4))
	assert.Equal(t, Breaks{1, 4}, Breaks{}.WithBounds(1, 4))
	assert.Empty(t, Breaks{1}.Trim())
	assert.Equal(t, 0, Breaks{1}.Classes())
}

func assertNonDecreasing(t *testing.T, b Breaks) {
	t.Helper()
	for i := 1; i < len(b); i++ {
		assert.LessOrEqual(t, b[i-1], b[i], "breaks %v decrease at %d", b, i)
	}
}
