// Package present implements the presentation lifecycle around insight
// fetches: the idle/loading/success/failure state machine, the single
// in-flight request rule, and the chart resource tied to the current result.
package present

import (
	"fmt"
	"sync"

	"github.com/sadhikari20/AIJobInsight/internal/client"
	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// State is the presentation lifecycle state.
type State string

// Lifecycle states. Transitions: idle -> loading -> success | failure, and
// back to loading on the next submission.
const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// ErrRequestInFlight is returned by Begin while a request is outstanding.
// The submit control stays disabled until the request settles.
var ErrRequestInFlight = fmt.Errorf("a request is already in flight")

// Model holds the single current result slot and drives state transitions.
// The current result is fully replaced on success, never merged, and is
// discarded as soon as a new request begins or the current one fails.
type Model struct {
	mu      sync.Mutex
	state   State
	result  *types.InsightResult
	errMsg  string
	chart   *Chart
	tracker *client.Tracker
}

// NewModel returns a Model in the idle state.
func NewModel() *Model {
	return &Model{
		state:   StateIdle,
		tracker: client.NewTracker(),
	}
}

// Begin starts a new submission and returns its request token. While a
// request is loading, further submissions are refused. Beginning a new
// request discards any prior result or error.
func (m *Model) Begin() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateLoading {
		return 0, ErrRequestInFlight
	}

	m.state = StateLoading
	m.result = nil
	m.errMsg = ""
	m.releaseChart()
	return m.tracker.Begin(), nil
}

// Succeed installs a result for the given token. Stale tokens are discarded
// and the model is left untouched; the return value reports whether the
// result was accepted.
func (m *Model) Succeed(token uint64, result *types.InsightResult) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.tracker.Accept(token) {
		return false
	}

	m.state = StateSuccess
	m.result = result
	m.errMsg = ""
	m.releaseChart()
	m.chart = NewChart(result.Distribution)
	return true
}

// Fail records a failure message for the given token. Stale tokens are
// discarded. No partial result survives a failure.
func (m *Model) Fail(token uint64, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.tracker.Accept(token) {
		return false
	}

	m.state = StateFailure
	m.result = nil
	m.errMsg = message
	m.releaseChart()
	return true
}

// Close releases the chart resource on teardown.
func (m *Model) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.releaseChart()
}

// releaseChart releases the current chart unconditionally. Callers must hold
// the lock.
func (m *Model) releaseChart() {
	if m.chart != nil {
		m.chart.Release()
		m.chart = nil
	}
}

// State returns the current lifecycle state.
func (m *Model) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Result returns the current result, or nil outside the success state.
func (m *Model) Result() *types.InsightResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

// Err returns the current failure message, or "" outside the failure state.
func (m *Model) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

// Chart returns the chart bound to the current result, or nil.
func (m *Model) Chart() *Chart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chart
}
