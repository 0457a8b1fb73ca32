package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMedian_OddCount(t *testing.T) {
	times := []time.Duration{5 * time.Millisecond, time.Millisecond, 3 * time.Millisecond}
	assert.Equal(t, 3*time.Millisecond, median(times))
}

func TestMedian_EvenCountAveragesMiddlePair(t *testing.T) {
	times := []time.Duration{
		8 * time.Millisecond, 2 * time.Millisecond,
		4 * time.Millisecond, 6 * time.Millisecond,
	}
	assert.Equal(t, 5*time.Millisecond, median(times))
}

func TestMedian_SingleTrial(t *testing.T) {
	assert.Equal(t, 7*time.Millisecond, median([]time.Duration{7 * time.Millisecond}))
}

func TestExtrapolate_TwoPointLinearFit(t *testing.T) {
	measured := []Point{
		{NodeCount: 10, MedianTime: 1 * time.Second},
		{NodeCount: 100, MedianTime: 4 * time.Second},
	}
	// slope (4-1)/(100-10) = 1/30 s per node; 4 + 900/30 = 34.
	assert.Equal(t, 34*time.Second, extrapolate(measured, 1000))
}

func TestExtrapolate_SinglePointIsFlat(t *testing.T) {
	measured := []Point{{NodeCount: 50, MedianTime: 2 * time.Second}}
	assert.Equal(t, 2*time.Second, extrapolate(measured, 5000))
}

func TestExtrapolate_NeverNegative(t *testing.T) {
	measured := []Point{
		{NodeCount: 10, MedianTime: 10 * time.Second},
		{NodeCount: 20, MedianTime: 1 * time.Second},
	}
	assert.Equal(t, time.Duration(0), extrapolate(measured, 100))
}

func TestLogSpace_EndpointsAndGrowth(t *testing.T) {
	sizes := logSpace(10, 1000, 3)
	assert.Equal(t, []int{10, 100, 1000}, sizes)
}

func TestLogSpace_DedupesSmallRanges(t *testing.T) {
	sizes := logSpace(2, 4, 10)
	assert.True(t, len(sizes) <= 3, "rounded collisions must collapse: %v", sizes)
	for i := 1; i < len(sizes); i++ {
		assert.Greater(t, sizes[i], sizes[i-1])
	}
	assert.Equal(t, 2, sizes[0])
	assert.Equal(t, 4, sizes[len(sizes)-1])
}

func TestLogSpace_SingleStep(t *testing.T) {
	assert.Equal(t, []int{25}, logSpace(25, 900, 1))
}

func TestSortPoints_MeasuredBeforeExtrapolatedOnTie(t *testing.T) {
	points := []Point{
		{NodeCount: 20, Extrapolated: true},
		{NodeCount: 10},
		{NodeCount: 20},
	}
	sortPoints(points)
	assert.Equal(t, 10, points[0].NodeCount)
	assert.False(t, points[1].Extrapolated)
	assert.True(t, points[2].Extrapolated)
}
