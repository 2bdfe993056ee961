// internal/embed/mock.go
package embed

import (
	"sync"
	"sync/atomic"
)

// MockRuntime is a test double for Runtime. Loads stay pending until
// Complete is called.
type MockRuntime struct {
	present bool
	loads   atomic.Int32

	mu     sync.Mutex
	ready  func(error)
	called chan struct{}
	once   sync.Once
}

// NewMockRuntime creates a mock runtime. present mirrors Runtime.Present.
func NewMockRuntime(present bool) *MockRuntime {
	return &MockRuntime{
		present: present,
		called:  make(chan struct{}),
	}
}

func (m *MockRuntime) Present() bool { return m.present }

func (m *MockRuntime) Load(ready func(error)) {
	m.loads.Add(1)
	m.mu.Lock()
	m.ready = ready
	m.mu.Unlock()
	m.once.Do(func() { close(m.called) })
}

// Loads returns how many times Load was called.
func (m *MockRuntime) Loads() int { return int(m.loads.Load()) }

// LoadCalled is closed once Load has been called.
func (m *MockRuntime) LoadCalled() <-chan struct{} { return m.called }

// Complete waits for Load to be called and then reports the result.
func (m *MockRuntime) Complete(err error) {
	<-m.called
	m.mu.Lock()
	ready := m.ready
	m.mu.Unlock()
	ready(err)
}

// MockWidget is a test double for Widget. Commands are recorded; state only
// changes through FireStateChange or SetState, like a real provider.
type MockWidget struct {
	Container Container
	Options   Options

	mu         sync.Mutex
	ev         Events
	state      State
	hasState   bool
	playErr    error
	playCalls  int
	pauseCalls int
	destroys   int
	destroyed  bool

	gate    chan struct{}
	entered chan struct{}
}

func (m *MockWidget) Play() error {
	m.mu.Lock()
	gate, entered := m.gate, m.entered
	m.mu.Unlock()
	if gate != nil {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return ErrDestroyed
	}
	m.playCalls++
	return m.playErr
}

func (m *MockWidget) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		return ErrDestroyed
	}
	m.pauseCalls++
	return nil
}

func (m *MockWidget) State() (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.hasState
}

func (m *MockWidget) Destroy() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroys++
	m.destroyed = true
	return nil
}

// Test helpers

func (m *MockWidget) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *MockWidget) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *MockWidget) DestroyCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroys
}

func (m *MockWidget) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// BlockPlay makes Play wait until release is called. entered receives a
// value when a Play call starts waiting.
func (m *MockWidget) BlockPlay() (entered <-chan struct{}, release func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gate := make(chan struct{})
	m.gate = gate
	m.entered = make(chan struct{}, 1)
	return m.entered, sync.OnceFunc(func() { close(gate) })
}

// SetState sets the state reported by State without firing an event.
func (m *MockWidget) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
	m.hasState = true
}

// FireReady simulates the provider ready notification.
func (m *MockWidget) FireReady() {
	if m.ev.OnReady != nil {
		m.ev.OnReady(m)
	}
}

// FireStateChange simulates a provider state change notification.
func (m *MockWidget) FireStateChange(s State) {
	m.SetState(s)
	if m.ev.OnStateChange != nil {
		m.ev.OnStateChange(s)
	}
}

// MockProvider is a test double for Provider.
type MockProvider struct {
	mu      sync.Mutex
	widgets []*MockWidget
	err     error
	created chan *MockWidget
}

// NewMockProvider creates a mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{created: make(chan *MockWidget, 64)}
}

func (p *MockProvider) NewWidget(c Container, opts Options, ev Events) (Widget, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	w := &MockWidget{Container: c, Options: opts, ev: ev, state: Unstarted}
	p.widgets = append(p.widgets, w)
	p.created <- w
	return w, nil
}

// SetError makes subsequent NewWidget calls fail with err.
func (p *MockProvider) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Widgets returns every widget built so far.
func (p *MockProvider) Widgets() []*MockWidget {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*MockWidget(nil), p.widgets...)
}

// Created delivers each widget as it is built.
func (p *MockProvider) Created() <-chan *MockWidget { return p.created }

// Verify mocks implement their interfaces at compile time.
var (
	_ Runtime  = (*MockRuntime)(nil)
	_ Widget   = (*MockWidget)(nil)
	_ Provider = (*MockProvider)(nil)
)
