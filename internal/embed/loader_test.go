package embed

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel")
	}
}

func TestLoader_ConcurrentCallsLoadOnce(t *testing.T) {
	rt := NewMockRuntime(false)
	l := NewLoader(rt, nil)

	const callers = 50
	signals := make([]*Signal, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			signals[i] = l.EnsureLoaded()
		}()
	}
	wg.Wait()

	for _, s := range signals {
		assert.Same(t, signals[0], s)
	}

	rt.Complete(nil)
	for _, s := range signals {
		waitClosed(t, s.Done())
		assert.NoError(t, s.Err())
	}

	assert.Equal(t, 1, rt.Loads())
	assert.True(t, l.Loaded())
}

func TestLoader_SequentialCallsAfterCompletion(t *testing.T) {
	rt := NewMockRuntime(false)
	l := NewLoader(rt, nil)

	first := l.EnsureLoaded()
	rt.Complete(nil)
	waitClosed(t, first.Done())

	second := l.EnsureLoaded()
	assert.Same(t, first, second)
	assert.True(t, second.Resolved())
	assert.Equal(t, 1, rt.Loads())
}

func TestLoader_PresentRuntimeSkipsLoad(t *testing.T) {
	rt := NewMockRuntime(true)
	l := NewLoader(rt, nil)

	s := l.EnsureLoaded()
	assert.True(t, s.Resolved())
	assert.NoError(t, s.Err())
	assert.True(t, l.Loaded())
	assert.Equal(t, 0, rt.Loads())
}

func TestLoader_ChainsPreviousHandler(t *testing.T) {
	rt := NewMockRuntime(false)
	l := NewLoader(rt, nil)

	var mu sync.Mutex
	var order []string
	l.Hook().Chain(func(error) {
		mu.Lock()
		order = append(order, "previous")
		mu.Unlock()
	})

	s := l.EnsureLoaded()
	l.Hook().Chain(func(error) {
		mu.Lock()
		order = append(order, "later")
		mu.Unlock()
	})

	rt.Complete(nil)
	waitClosed(t, s.Done())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"previous", "later"}, order)
}

func TestLoader_FailureSettlesWithError(t *testing.T) {
	rt := NewMockRuntime(false)
	l := NewLoader(rt, nil)

	s := l.EnsureLoaded()
	rt.Complete(errors.New("mpv not found"))
	waitClosed(t, s.Done())

	require.Error(t, s.Err())
	assert.False(t, l.Loaded())

	// No retry: the failed signal is handed out again.
	assert.Same(t, s, l.EnsureLoaded())
	assert.Equal(t, 1, rt.Loads())
}

func TestLoader_StalledRuntimeNeverResolves(t *testing.T) {
	rt := NewMockRuntime(false)
	l := NewLoader(rt, nil)

	s := l.EnsureLoaded()
	waitClosed(t, rt.LoadCalled())
	assert.False(t, s.Resolved())
	assert.False(t, l.Loaded())
}

func TestShared_ReturnsSameLoader(t *testing.T) {
	a := Shared(NewMockRuntime(true), nil)
	b := Shared(NewMockRuntime(false), nil)
	assert.Same(t, a, b)
}
