package mpv

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/podcards/internal/embed"
)

func loadedRuntime() *Runtime {
	return &Runtime{loaded: true, mpv: "/usr/bin/mpv", ytdlp: "/usr/bin/yt-dlp"}
}

func testOptions() embed.Options {
	return embed.Options{
		ContentID: "BWvThjrjTmw",
		Host:      embed.DefaultHost,
		PlayerVars: embed.PlayerVars{
			InlinePlayback: true,
			Origin:         "https://podcards.local",
		},
	}
}

type recorder struct {
	ready  chan embed.Widget
	states chan embed.State
}

func newRecorder() *recorder {
	return &recorder{
		ready:  make(chan embed.Widget, 1),
		states: make(chan embed.State, 32),
	}
}

func (r *recorder) events() embed.Events {
	return embed.Events{
		OnReady:       func(w embed.Widget) { r.ready <- w },
		OnStateChange: func(s embed.State) { r.states <- s },
	}
}

func (r *recorder) waitState(t *testing.T, want embed.State) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-r.states:
			if s == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for state %v", want)
		}
	}
}

func startWidget(t *testing.T) (*Widget, *fakeMPV, *recorder) {
	t.Helper()
	p := NewProvider(loadedRuntime(), nil)
	fake := newFakeMPV(t)
	p.launch = fake.launch

	rec := newRecorder()
	w, err := p.NewWidget(embed.Container{ID: "c1", Dir: t.TempDir()}, testOptions(), rec.events())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Destroy() })

	select {
	case got := <-rec.ready:
		assert.Same(t, w, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ready")
	}
	return w.(*Widget), fake, rec
}

func TestWidget_ReadyThenCued(t *testing.T) {
	w, fake, _ := startWidget(t)

	require.Eventually(t, func() bool {
		s, ok := w.State()
		return ok && s == embed.Cued
	}, 2*time.Second, 10*time.Millisecond)

	sent := fake.sent()
	assert.Contains(t, sent, "observe_property")
	assert.Contains(t, sent, "loadfile")
}

func TestWidget_PlayPauseCycle(t *testing.T) {
	w, _, rec := startWidget(t)

	require.NoError(t, w.Play())
	rec.waitState(t, embed.Playing)

	require.NoError(t, w.Pause())
	rec.waitState(t, embed.Paused)

	s, ok := w.State()
	assert.True(t, ok)
	assert.Equal(t, embed.Paused, s)
}

func TestWidget_DestroyQuitsAndIsIdempotent(t *testing.T) {
	w, fake, _ := startWidget(t)
	socket := w.socket

	require.NoError(t, w.Destroy())
	require.NoError(t, w.Destroy())

	assert.Contains(t, fake.sent(), "quit")
	_, err := os.Stat(socket)
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, w.Play(), embed.ErrDestroyed)
	assert.ErrorIs(t, w.Pause(), embed.ErrDestroyed)
}

func TestWidget_LoadFailureShutsDownMPV(t *testing.T) {
	p := NewProvider(loadedRuntime(), nil)
	fake := newFakeMPV(t)
	fake.failLoad = true
	p.launch = fake.launch

	rec := newRecorder()
	w, err := p.NewWidget(embed.Container{ID: "c1", Dir: t.TempDir()}, testOptions(), rec.events())
	require.NoError(t, err)
	mw := w.(*Widget)

	select {
	case <-fake.exited:
	case <-time.After(2 * time.Second):
		t.Fatal("mpv was not shut down after loadfile failed")
	}
	assert.Contains(t, fake.sent(), "quit")
	assert.Empty(t, rec.ready, "no ready after a failed load")
	assert.ErrorIs(t, mw.Play(), embed.ErrDestroyed)
	require.Eventually(t, func() bool {
		_, err := os.Stat(mw.socket)
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestProvider_PassesOptionsAsArgs(t *testing.T) {
	_, fake, _ := startWidget(t)
	args := fake.launchArgs()

	assert.Contains(t, args, "--pause=yes")
	assert.Contains(t, args, "--force-window=no")
	assert.Contains(t, args, "--referrer=https://podcards.local")
	assert.Contains(t, args, "--script-opts-append=ytdl_hook-ytdl_path=/usr/bin/yt-dlp")
}

func TestProvider_RequiresLoadedRuntime(t *testing.T) {
	p := NewProvider(NewRuntime(RuntimeConfig{}, nil), nil)
	_, err := p.NewWidget(embed.Container{ID: "c", Dir: t.TempDir()}, testOptions(), embed.Events{})
	assert.ErrorIs(t, err, embed.ErrNotLoaded)
}

func TestBuildArgs(t *testing.T) {
	socket := filepath.Join("/run", "c", "mpv.sock")

	args := buildArgs(socket, embed.Options{PlayerVars: embed.PlayerVars{Autoplay: true, RelatedContent: true}}, "")
	assert.Contains(t, args, "--input-ipc-server="+socket)
	assert.NotContains(t, args, "--pause=yes")
	assert.NotContains(t, args, "--ytdl-raw-options-append=no-playlist=")
	assert.NotContains(t, args, "--force-window=no")

	args = buildArgs(socket, testOptions(), "")
	assert.Contains(t, args, "--pause=yes")
	assert.Contains(t, args, "--ytdl-raw-options-append=no-playlist=")
	assert.Contains(t, args, "--http-header-fields-append=Origin: https://podcards.local")
}

func TestContentURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/abc",
		contentURL(embed.Options{ContentID: "abc"}))
	assert.Equal(t, "https://example.test/embed/abc",
		contentURL(embed.Options{ContentID: "abc", Host: "https://example.test/"}))
}
