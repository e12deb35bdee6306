package queue

import (
	"math"
	"sync"
)

// Estimator keeps the running estimate of consult duration in minutes. Each
// completed consult folds into the average with weight 1/4, so the estimate
// adapts within a handful of consults without a single outlier destabilizing
// it.
type Estimator struct {
	mu  sync.Mutex
	avg int
}

func NewEstimator(defaultMinutes int) *Estimator {
	return &Estimator{avg: defaultMinutes}
}

// Record folds one actual observed duration into the average. Callers clamp
// actualMinutes to >= 1; Record clamps again so a bad caller cannot drive the
// average to zero.
func (e *Estimator) Record(actualMinutes int) int {
	if actualMinutes < 1 {
		actualMinutes = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.avg = int(math.Round(float64(e.avg*3+actualMinutes) / 4))
	return e.avg
}

func (e *Estimator) Current() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.avg
}

// Reset restores the configured default; used by the day rollover.
func (e *Estimator) Reset(defaultMinutes int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.avg = defaultMinutes
}
