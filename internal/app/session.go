// internal/app/session.go
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/llehouerou/podcards/internal/catalog"
	"github.com/llehouerou/podcards/internal/embed"
	"github.com/llehouerou/podcards/internal/logging"
)

// ErrNoEpisode is returned by remote commands when there is no card to
// control.
var ErrNoEpisode = errors.New("no episode to control")

// changeBuffer bounds pending change notifications. A full buffer drops the
// notification; the queued ones already trigger a full refresh.
const changeBuffer = 64

// Deps are the collaborators a session builds its instances from.
type Deps struct {
	Loader   *embed.Loader
	Builder  embed.Builder
	Document *embed.Document
	Logger   *slog.Logger
}

// Session owns one player instance per episode card. It is shared by the
// bubbletea model and the media-key integration, so it is safe for
// concurrent use.
type Session struct {
	doc    *embed.Document
	logger *slog.Logger

	order     []string
	instances map[string]*embed.Instance
	episodes  map[string]catalog.Episode
	changes   chan string

	mu      sync.Mutex
	active  string // last toggled card
	focused string
	closed  bool
}

// NewSession mounts a container per episode and creates its instance.
// Nothing is loaded until Start.
func NewSession(episodes []catalog.Episode, deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Session{
		doc:       deps.Document,
		logger:    logger.With(logging.FieldComponent, "session"),
		instances: make(map[string]*embed.Instance, len(episodes)),
		episodes:  make(map[string]catalog.Episode, len(episodes)),
		changes:   make(chan string, changeBuffer),
	}
	for _, ep := range episodes {
		id := ep.ContainerID()
		deps.Document.Mount(id)
		inst := embed.NewInstance(id, ep.ContentID, deps.Loader, deps.Builder, logger)
		inst.OnChange(func() { s.changed(id) })
		s.order = append(s.order, id)
		s.instances[id] = inst
		s.episodes[id] = ep
	}
	if len(s.order) > 0 {
		s.focused = s.order[0]
	}
	return s
}

func (s *Session) changed(id string) {
	select {
	case s.changes <- id:
	default:
	}
}

// Changes delivers the container id of every instance that changed.
func (s *Session) Changes() <-chan string {
	return s.changes
}

// Start initializes every instance. They share one runtime load.
func (s *Session) Start(ctx context.Context) {
	s.logger.Info("starting players", "count", len(s.order))
	for _, id := range s.order {
		s.instances[id].Initialize(ctx)
	}
}

// View returns the current view of the card's instance.
func (s *Session) View(containerID string) (embed.View, bool) {
	inst, ok := s.instances[containerID]
	if !ok {
		return embed.View{}, false
	}
	return inst.Snapshot(), true
}

// Toggle plays or pauses the card's player and makes it the active card.
func (s *Session) Toggle(containerID string) bool {
	inst, ok := s.instances[containerID]
	if !ok {
		return false
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.active = containerID
	s.mu.Unlock()

	inst.Toggle()
	return true
}

// SetFocused records the focused card, the fallback target of remote
// commands before any card was toggled.
func (s *Session) SetFocused(containerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = containerID
}

func (s *Session) target() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != "" {
		return s.active
	}
	return s.focused
}

// Active returns the card remote commands apply to.
func (s *Session) Active() (catalog.Episode, embed.View, bool) {
	id := s.target()
	v, ok := s.View(id)
	if !ok {
		return catalog.Episode{}, embed.View{}, false
	}
	return s.episodes[id], v, true
}

// PlayPause toggles the active card.
func (s *Session) PlayPause() error {
	if !s.Toggle(s.target()) {
		return ErrNoEpisode
	}
	return nil
}

// Play toggles the active card unless it already counts as playing.
func (s *Session) Play() error {
	_, v, ok := s.Active()
	if !ok {
		return ErrNoEpisode
	}
	if v.IsPlaying {
		return nil
	}
	return s.PlayPause()
}

// Pause toggles the active card if it counts as playing.
func (s *Session) Pause() error {
	_, v, ok := s.Active()
	if !ok {
		return ErrNoEpisode
	}
	if !v.IsPlaying {
		return nil
	}
	return s.PlayPause()
}

// Close tears every instance down and unmounts the containers. It is safe to
// call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	for _, id := range s.order {
		s.instances[id].Teardown()
		s.doc.Unmount(id)
	}
	s.logger.Info("players torn down")
}
