package metrics

import (
	"sync/atomic"
)

// MetricID identifies one counter slot.
type MetricID uint8

const (
	MetricLoginSuccess MetricID = iota
	MetricLoginFailure
	MetricRegisterSuccess
	MetricRegisterFailure
	MetricProfileUpdateSuccess
	MetricProfileUpdateFailure
	MetricProfileRefreshSuccess
	MetricProfileRefreshFailure
	MetricPasswordChangeSuccess
	MetricPasswordChangeFailure
	MetricPasswordResetRequest
	MetricPasswordResetRequestFailure
	MetricPasswordResetConfirmSuccess
	MetricPasswordResetConfirmFailure
	MetricLogout
	MetricHydrateSuccess
	MetricHydrateEmpty
	MetricHydrateCorrupt

	MetricIDCount
)

// Config controls whether counting is active. When Enabled is false all
// operations are no-ops.
type Config struct {
	Enabled bool
}

// paddedCounter keeps each slot on its own cache line so concurrent
// increments of different counters do not contend.
type paddedCounter struct {
	value atomic.Uint64
	_     [56]byte
}

// Metrics holds the counter slots for one manager instance. No globals;
// every manager owns its own set.
type Metrics struct {
	enabled  bool
	counters [MetricIDCount]paddedCounter
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Counters map[MetricID]uint64
}

func New(cfg Config) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return
	}
	m.counters[id].value.Add(1)
}

func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{Counters: make(map[MetricID]uint64, MetricIDCount)}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < MetricIDCount; id++ {
		snap.Counters[id] = m.counters[id].value.Load()
	}
	return snap
}
