package mpv

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

const (
	commandTimeout = 2 * time.Second
	maxLineSize    = 1 << 20
)

var errConnClosed = errors.New("mpv ipc connection closed")

// request is a single IPC command. mpv echoes request_id in its reply.
type request struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// message is either a command reply or an asynchronous event.
type message struct {
	Event     string          `json:"event,omitempty"`
	ID        int64           `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	RequestID int64           `json:"request_id,omitempty"`
}

func (m message) isEvent() bool { return m.Event != "" }

// ipcConn multiplexes commands and events over one mpv IPC socket.
// Events are queued without bound so the reader never blocks on a slow
// consumer and replies keep flowing.
type ipcConn struct {
	conn   net.Conn
	nextID atomic.Int64

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[int64]chan message
	queue   []message
	wake    chan struct{}

	closed    chan struct{}
	closeOnce sync.Once
}

func newIPCConn(conn net.Conn) *ipcConn {
	c := &ipcConn{
		conn:    conn,
		pending: make(map[int64]chan message),
		wake:    make(chan struct{}, 1),
		closed:  make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// dialIPC connects to socket, retrying until it appears or ctx is done.
func dialIPC(ctx context.Context, socket string) (*ipcConn, error) {
	backoff := 25 * time.Millisecond
	for {
		var d net.Dialer
		conn, err := d.DialContext(ctx, "unix", socket)
		if err == nil {
			return newIPCConn(conn), nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("dial %s: %w", socket, err)
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, 250*time.Millisecond)
	}
}

func (c *ipcConn) readLoop() {
	defer c.Close()

	sc := bufio.NewScanner(c.conn)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		var m message
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			continue
		}
		if m.isEvent() {
			c.push(m)
			continue
		}
		c.mu.Lock()
		ch, ok := c.pending[m.RequestID]
		delete(c.pending, m.RequestID)
		c.mu.Unlock()
		if ok {
			ch <- m
		}
	}
}

// push appends an event to the queue.
func (c *ipcConn) push(m message) {
	c.mu.Lock()
	c.queue = append(c.queue, m)
	c.mu.Unlock()
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// next blocks until an event is queued or the connection closes.
func (c *ipcConn) next() (message, bool) {
	for {
		c.mu.Lock()
		if len(c.queue) > 0 {
			m := c.queue[0]
			c.queue = c.queue[1:]
			c.mu.Unlock()
			return m, true
		}
		c.mu.Unlock()

		select {
		case <-c.wake:
		case <-c.closed:
			c.mu.Lock()
			empty := len(c.queue) == 0
			c.mu.Unlock()
			if empty {
				return message{}, false
			}
		}
	}
}

// Command sends args and waits for mpv's reply.
func (c *ipcConn) Command(ctx context.Context, args ...any) (json.RawMessage, error) {
	id := c.nextID.Add(1)
	ch := make(chan message, 1)

	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()

	line, err := json.Marshal(request{Command: args, RequestID: id})
	if err != nil {
		c.forget(id)
		return nil, err
	}

	c.writeMu.Lock()
	_, err = c.conn.Write(append(line, '\n'))
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		return nil, fmt.Errorf("mpv command %v: %w", args[0], err)
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	select {
	case m := <-ch:
		if m.Error != "" && m.Error != "success" {
			return nil, fmt.Errorf("mpv command %v: %s", args[0], m.Error)
		}
		return m.Data, nil
	case <-c.closed:
		c.forget(id)
		return nil, errConnClosed
	case <-ctx.Done():
		c.forget(id)
		return nil, fmt.Errorf("mpv command %v: %w", args[0], ctx.Err())
	}
}

func (c *ipcConn) forget(id int64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// Close closes the socket. Safe to call more than once.
func (c *ipcConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.conn.Close()
		close(c.closed)
	})
	return err
}
