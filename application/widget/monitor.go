package widget

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// LoadState is the lifecycle of one injection cycle
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateLoaded  LoadState = "loaded"
	StateFailed  LoadState = "failed"
)

// textThreshold is the rendered-text length above which the widget counts as
// loaded
const textThreshold = 20

// ContainerSnapshot describes what the host container currently holds
type ContainerSnapshot struct {
	ChildElements  int
	TextLength     int
	HasInteractive bool
}

// ContainerProbe reports on the embed container. The widget's own load
// signal is not observable, so loading is inferred from what accrues in the
// container.
type ContainerProbe interface {
	Snapshot() ContainerSnapshot
}

// Monitor polls a container to decide whether the widget rendered. One
// monitor serves one container across many injection cycles; Arm starts a new
// cycle and cancels the previous one.
type Monitor struct {
	probe    ContainerProbe
	interval time.Duration
	timeout  time.Duration
	onChange func(LoadState)
	logger   *zap.Logger

	mu     sync.Mutex
	state  LoadState
	cancel chan struct{}
}

// NewMonitor creates a Monitor. onChange fires on every state transition and
// may be nil. interval and timeout fall back to 500ms and 8s when
// non-positive.
func NewMonitor(probe ContainerProbe, interval, timeout time.Duration, onChange func(LoadState), logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Monitor{
		probe:    probe,
		interval: interval,
		timeout:  timeout,
		onChange: onChange,
		logger:   logger,
		state:    StateLoading,
	}
}

// State returns the state of the current cycle
func (m *Monitor) State() LoadState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Arm begins a new injection cycle. Any in-flight polling and timeout from
// the previous cycle is cancelled first, so a stale cycle can never report
// for the wrong route.
func (m *Monitor) Arm() {
	m.mu.Lock()
	if m.cancel != nil {
		close(m.cancel)
	}
	cancel := make(chan struct{})
	m.cancel = cancel
	changed := m.setStateLocked(StateLoading)
	m.mu.Unlock()

	m.notify(changed, StateLoading)
	go m.run(cancel)
}

// Stop cancels the current cycle without a state transition. Always called
// on teardown.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		close(m.cancel)
		m.cancel = nil
	}
}

func (m *Monitor) run(cancel chan struct{}) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	deadline := time.NewTimer(m.timeout)
	defer deadline.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			if loaded(m.probe.Snapshot()) {
				m.finish(cancel, StateLoaded)
				return
			}
		case <-deadline.C:
			m.logger.Warn("widget did not render before deadline",
				zap.Duration("timeout", m.timeout))
			m.finish(cancel, StateFailed)
			return
		}
	}
}

// finish records a terminal state for the cycle, unless the cycle was
// already cancelled by a re-arm.
func (m *Monitor) finish(cancel chan struct{}, s LoadState) {
	m.mu.Lock()
	if m.cancel != cancel {
		m.mu.Unlock()
		return
	}
	m.cancel = nil
	changed := m.setStateLocked(s)
	m.mu.Unlock()

	m.notify(changed, s)
}

func (m *Monitor) setStateLocked(s LoadState) bool {
	if m.state == s {
		return false
	}
	m.state = s
	return true
}

func (m *Monitor) notify(changed bool, s LoadState) {
	if changed && m.onChange != nil {
		m.onChange(s)
	}
}

// loaded reports whether the container accrued more than the injected script
// tag itself
func loaded(snap ContainerSnapshot) bool {
	return snap.ChildElements > 1 || snap.TextLength > textThreshold || snap.HasInteractive
}
