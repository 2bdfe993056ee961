package mpv

import (
	"bufio"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"sync"
	"testing"
)

// fakeMPV serves the subset of mpv's JSON IPC the widget uses.
type fakeMPV struct {
	t        *testing.T
	listener net.Listener

	mu       sync.Mutex
	args     []string
	commands [][]any
	conns    []net.Conn

	// failLoad makes loadfile fail like an unreachable URL.
	failLoad bool

	exited   chan struct{}
	exitOnce sync.Once
}

// launch implements launcher.
func (f *fakeMPV) launch(_ string, args []string) (process, error) {
	var socket string
	for _, a := range args {
		if v, ok := strings.CutPrefix(a, "--input-ipc-server="); ok {
			socket = v
		}
	}
	if socket == "" {
		return nil, errors.New("no ipc socket argument")
	}
	ln, err := net.Listen("unix", socket)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.args = args
	f.listener = ln
	f.mu.Unlock()

	go f.serve()
	return f, nil
}

func newFakeMPV(t *testing.T) *fakeMPV {
	return &fakeMPV{t: t, exited: make(chan struct{})}
}

func (f *fakeMPV) Wait() error {
	<-f.exited
	return nil
}

func (f *fakeMPV) Kill() error {
	f.exit()
	return nil
}

func (f *fakeMPV) exit() {
	f.exitOnce.Do(func() {
		f.mu.Lock()
		if f.listener != nil {
			f.listener.Close()
		}
		for _, c := range f.conns {
			c.Close()
		}
		f.mu.Unlock()
		close(f.exited)
	})
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		f.mu.Lock()
		f.conns = append(f.conns, conn)
		f.mu.Unlock()
		go f.handle(conn)
	}
}

func (f *fakeMPV) handle(conn net.Conn) {
	var writeMu sync.Mutex
	send := func(v any) {
		b, _ := json.Marshal(v)
		writeMu.Lock()
		_, _ = conn.Write(append(b, '\n'))
		writeMu.Unlock()
	}
	reply := func(id int64) {
		send(map[string]any{"error": "success", "data": nil, "request_id": id})
	}
	property := func(id int, name string, v any) {
		send(map[string]any{"event": "property-change", "id": id, "name": name, "data": v})
	}

	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		var req struct {
			Command   []any `json:"command"`
			RequestID int64 `json:"request_id"`
		}
		if err := json.Unmarshal(sc.Bytes(), &req); err != nil || len(req.Command) == 0 {
			continue
		}
		f.mu.Lock()
		f.commands = append(f.commands, req.Command)
		f.mu.Unlock()

		name, _ := req.Command[0].(string)
		switch name {
		case "observe_property":
			reply(req.RequestID)
			id := int(req.Command[1].(float64))
			prop := req.Command[2].(string)
			if prop == "pause" {
				property(id, prop, true)
			} else {
				property(id, prop, false)
			}
		case "loadfile":
			if f.failLoad {
				send(map[string]any{"error": "loading failed", "request_id": req.RequestID})
				continue
			}
			reply(req.RequestID)
			send(map[string]any{"event": "file-loaded"})
		case "set_property":
			reply(req.RequestID)
			property(1, req.Command[1].(string), req.Command[2])
		case "quit":
			reply(req.RequestID)
			f.exit()
			return
		default:
			reply(req.RequestID)
		}
	}
}

// sent returns the names of every command received so far.
func (f *fakeMPV) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.commands))
	for _, c := range f.commands {
		name, _ := c[0].(string)
		names = append(names, name)
	}
	return names
}

func (f *fakeMPV) launchArgs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.args...)
}
