package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimator_Record(t *testing.T) {
	e := NewEstimator(8)
	assert.Equal(t, 8, e.Current())

	// round((8*3 + 12) / 4) = 9
	assert.Equal(t, 9, e.Record(12))
	assert.Equal(t, 9, e.Current())

	// round((9*3 + 20) / 4) = round(11.75) = 12
	assert.Equal(t, 12, e.Record(20))
}

func TestEstimator_RecordClampsBelowOne(t *testing.T) {
	e := NewEstimator(8)

	// a zero duration is folded in as one minute
	assert.Equal(t, 6, e.Record(0))
}

func TestEstimator_ConvergesTowardsSamples(t *testing.T) {
	e := NewEstimator(8)
	for i := 0; i < 10; i++ {
		e.Record(20)
	}

	// integer rounding plateaus just below the sample: round((19*3+20)/4) = 19
	assert.Equal(t, 19, e.Current())
}

func TestEstimator_Reset(t *testing.T) {
	e := NewEstimator(8)
	e.Record(30)
	e.Reset(8)

	assert.Equal(t, 8, e.Current())
}
