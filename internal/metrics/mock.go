package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	schedulesGenerated int
	matchesScored      int
	simulationsRun     int
	exportFailures     int
	scheduleDurations  []float64
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		scheduleDurations: make([]float64, 0),
	}
}

func (m *Mock) IncSchedulesGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedulesGenerated++
}

func (m *Mock) IncMatchesScored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesScored++
}

func (m *Mock) IncSimulationsRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.simulationsRun++
}

func (m *Mock) IncExportFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exportFailures++
}

func (m *Mock) ObserveScheduleGeneration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleDurations = append(m.scheduleDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SchedulesGenerated returns the number of times IncSchedulesGenerated was called.
func (m *Mock) SchedulesGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedulesGenerated
}

// MatchesScored returns the number of times IncMatchesScored was called.
func (m *Mock) MatchesScored() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesScored
}

// SimulationsRun returns the number of times IncSimulationsRun was called.
func (m *Mock) SimulationsRun() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.simulationsRun
}

// ExportFailures returns the number of times IncExportFailures was called.
func (m *Mock) ExportFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exportFailures
}
