package mpv

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/llehouerou/podcards/internal/embed"
)

const (
	connectTimeout = 10 * time.Second
	quitTimeout    = 2 * time.Second

	// eventReady is queued locally once the content was handed to mpv, so
	// the ready notification is ordered with the property events before it.
	eventReady = "podcards-ready"
)

var errNotConnected = errors.New("mpv not connected")

// observed lists the properties the widget derives its state from.
var observed = []string{"pause", "paused-for-cache", "eof-reached"}

// Widget is one mpv process playing one piece of content.
type Widget struct {
	proc   process
	socket string
	url    string
	ev     embed.Events
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	exited chan struct{}

	mu        sync.Mutex
	conn      *ipcConn
	ready     bool
	loaded    bool
	paused    bool
	buffering bool
	ended     bool
	started   bool // playback began at least once since load
	emitted   embed.State
	destroyed bool

	destroyOnce sync.Once
}

func newWidget(proc process, socket, url string, ev embed.Events, logger *slog.Logger) *Widget {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Widget{
		proc:    proc,
		socket:  socket,
		url:     url,
		ev:      ev,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		exited:  make(chan struct{}),
		paused:  true,
		emitted: embed.Unstarted,
	}
	go func() {
		err := proc.Wait()
		w.logger.Debug("mpv exited", "error", err)
		close(w.exited)
	}()
	return w
}

// run connects to mpv, loads the content and dispatches events until the
// connection closes.
func (w *Widget) run() {
	dctx, cancel := context.WithTimeout(w.ctx, connectTimeout)
	conn, err := dialIPC(dctx, w.socket)
	cancel()
	if err != nil {
		w.logger.Error("mpv ipc unavailable", "error", err)
		_ = w.Destroy()
		return
	}

	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		conn.Close()
		return
	}
	w.conn = conn
	w.mu.Unlock()

	for i, name := range observed {
		if _, err := conn.Command(w.ctx, "observe_property", i+1, name); err != nil {
			w.logger.Warn("observe property failed", "property", name, "error", err)
		}
	}
	if _, err := conn.Command(w.ctx, "loadfile", w.url, "replace"); err != nil {
		w.logger.Error("loadfile failed", "url", w.url, "error", err)
		_ = w.Destroy()
		return
	}
	conn.push(message{Event: eventReady})

	for {
		m, ok := conn.next()
		if !ok {
			return
		}
		w.handle(m)
	}
}

func (w *Widget) handle(m message) {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}

	switch m.Event {
	case eventReady:
		w.ready = true
		w.emitted = w.stateLocked()
		w.mu.Unlock()
		if w.ev.OnReady != nil {
			w.ev.OnReady(w)
		}
		return
	case "file-loaded":
		w.loaded = true
		w.ended = false
		w.started = !w.paused
	case "end-file":
		switch m.Reason {
		case "eof":
			w.ended = true
		case "error":
			w.logger.Warn("playback error", "url", w.url)
		}
	case "property-change":
		w.applyPropertyLocked(m.Name, m.Data)
	}

	if !w.ready {
		w.mu.Unlock()
		return
	}
	s := w.stateLocked()
	if s == w.emitted {
		w.mu.Unlock()
		return
	}
	w.emitted = s
	w.mu.Unlock()

	if w.ev.OnStateChange != nil {
		w.ev.OnStateChange(s)
	}
}

func (w *Widget) applyPropertyLocked(name string, data json.RawMessage) {
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return
	}
	switch name {
	case "pause":
		w.paused = v
		if !v {
			w.ended = false
			w.started = w.started || w.loaded
		}
	case "paused-for-cache":
		w.buffering = v
	case "eof-reached":
		if v {
			w.ended = true
		}
	}
}

// stateLocked maps mpv's properties onto provider states.
func (w *Widget) stateLocked() embed.State {
	switch {
	case w.ended:
		return embed.Ended
	case !w.loaded:
		return embed.Unstarted
	case !w.paused && w.buffering:
		return embed.Buffering
	case !w.paused:
		return embed.Playing
	case w.started:
		return embed.Paused
	default:
		return embed.Cued
	}
}

// State returns the current state once the widget is ready.
func (w *Widget) State() (embed.State, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.ready {
		return embed.Unstarted, false
	}
	return w.stateLocked(), true
}

// Play resumes playback, rewinding first if the content ended.
func (w *Widget) Play() error {
	conn, ended, err := w.session()
	if err != nil {
		return err
	}
	if ended {
		if _, err := conn.Command(w.ctx, "seek", 0, "absolute"); err != nil {
			return err
		}
	}
	_, err = conn.Command(w.ctx, "set_property", "pause", false)
	return err
}

// Pause pauses playback.
func (w *Widget) Pause() error {
	conn, _, err := w.session()
	if err != nil {
		return err
	}
	_, err = conn.Command(w.ctx, "set_property", "pause", true)
	return err
}

func (w *Widget) session() (*ipcConn, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return nil, false, embed.ErrDestroyed
	}
	if w.conn == nil {
		return nil, false, errNotConnected
	}
	return w.conn, w.ended, nil
}

// Destroy quits mpv, killing it if it does not exit in time, and removes
// the IPC socket. Later calls are no-ops.
func (w *Widget) Destroy() error {
	var err error
	w.destroyOnce.Do(func() {
		w.mu.Lock()
		w.destroyed = true
		conn := w.conn
		w.conn = nil
		w.mu.Unlock()

		if conn != nil {
			ctx, cancel := context.WithTimeout(context.Background(), quitTimeout)
			_, _ = conn.Command(ctx, "quit")
			cancel()
			conn.Close()
		}
		w.cancel()

		select {
		case <-w.exited:
		case <-time.After(quitTimeout):
			err = w.proc.Kill()
		}
		if rmErr := os.Remove(w.socket); rmErr != nil && !os.IsNotExist(rmErr) {
			w.logger.Debug("remove socket", "error", rmErr)
		}
	})
	return err
}

// Verify Widget implements embed.Widget at compile time.
var _ embed.Widget = (*Widget)(nil)
