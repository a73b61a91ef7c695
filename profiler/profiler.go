package profiler

import (
	"sort"
	"sync"
	"time"

	"github.com/PlakarLabs/defendertest/logging"
)

type profiler struct {
	muProfiler sync.Mutex

	events            map[string]bool
	eventDurations    map[string]time.Duration
	eventDurationsMin map[string]time.Duration
	eventDurationsMax map[string]time.Duration

	eventCounts map[string]uint64
}

var profilerSingleton *profiler

func init() {
	profilerSingleton = newProfiler()
}

func newProfiler() *profiler {
	return &profiler{
		events:            make(map[string]bool),
		eventDurations:    make(map[string]time.Duration),
		eventDurationsMin: make(map[string]time.Duration),
		eventDurationsMax: make(map[string]time.Duration),
		eventCounts:       make(map[string]uint64),
	}
}

func RecordEvent(event string, duration time.Duration) {
	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()

	if _, exists := profilerSingleton.events[event]; !exists {
		profilerSingleton.events[event] = true
		profilerSingleton.eventDurations[event] = 0
		profilerSingleton.eventDurationsMin[event] = duration
		profilerSingleton.eventDurationsMax[event] = duration
		profilerSingleton.eventCounts[event] = 0
	}

	profilerSingleton.eventDurations[event] += duration
	if duration < profilerSingleton.eventDurationsMin[event] {
		profilerSingleton.eventDurationsMin[event] = duration
	}
	if duration > profilerSingleton.eventDurationsMax[event] {
		profilerSingleton.eventDurationsMax[event] = duration
	}
	profilerSingleton.eventCounts[event] += 1
}

// Since records the time elapsed since t0 under event.
func Since(event string, t0 time.Time) {
	RecordEvent(event, time.Since(t0))
}

type Stat struct {
	Event string
	Count uint64
	Total time.Duration
	Min   time.Duration
	Avg   time.Duration
	Max   time.Duration
}

// Stats returns a snapshot of every recorded event, sorted by name.
func Stats() []Stat {
	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()

	ret := make([]Stat, 0, len(profilerSingleton.events))
	for event := range profilerSingleton.events {
		count := profilerSingleton.eventCounts[event]
		ret = append(ret, Stat{
			Event: event,
			Count: count,
			Total: profilerSingleton.eventDurations[event],
			Min:   profilerSingleton.eventDurationsMin[event],
			Avg:   time.Duration(uint64(profilerSingleton.eventDurations[event]) / count),
			Max:   profilerSingleton.eventDurationsMax[event],
		})
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Event < ret[j].Event
	})
	return ret
}

func Display(logger *logging.Logger) {
	for _, stat := range Stats() {
		logger.Stdout("profile %s: calls=%d, min=%s, avg=%s, max=%s, total=%s",
			stat.Event, stat.Count, stat.Min, stat.Avg, stat.Max, stat.Total)
	}
}

func Reset() {
	profilerSingleton.muProfiler.Lock()
	defer profilerSingleton.muProfiler.Unlock()

	profilerSingleton.events = make(map[string]bool)
	profilerSingleton.eventDurations = make(map[string]time.Duration)
	profilerSingleton.eventDurationsMin = make(map[string]time.Duration)
	profilerSingleton.eventDurationsMax = make(map[string]time.Duration)
	profilerSingleton.eventCounts = make(map[string]uint64)
}
