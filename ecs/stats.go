package ecs

import "time"

// SceneStats provides statistics about scene execution.
type SceneStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Priority       int
	Enabled        bool
	InboxDepth     int
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStats struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (st *systemStats) record(d time.Duration) {
	st.executionCount++
	st.lastDuration = d
	st.totalDuration += d

	if st.minDuration == 0 || d < st.minDuration {
		st.minDuration = d
	}
	if d > st.maxDuration {
		st.maxDuration = d
	}
}

// Stats returns execution statistics for every system in priority order.
func (s *Scene) Stats() *SceneStats {
	stats := &SceneStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, system := range s.systems {
		b := system.base()
		avgDuration := time.Duration(0)
		if b.stats.executionCount > 0 {
			avgDuration = b.stats.totalDuration / time.Duration(b.stats.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           b.name,
			Priority:       b.priority,
			Enabled:        b.enabled,
			InboxDepth:     len(b.inbox),
			ExecutionCount: b.stats.executionCount,
			MinDuration:    b.stats.minDuration,
			MaxDuration:    b.stats.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   b.stats.lastDuration,
			TotalDuration:  b.stats.totalDuration,
		}
		totalExecs += b.stats.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
