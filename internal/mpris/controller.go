// Package mpris exposes the active podcast card to desktop media keys.
package mpris

import (
	"errors"

	"github.com/llehouerou/podcards/internal/catalog"
	"github.com/llehouerou/podcards/internal/embed"
)

// ErrNoController is returned by New without a controller.
var ErrNoController = errors.New("mpris: nil controller")

// Controller is the card the media keys act on.
type Controller interface {
	Active() (catalog.Episode, embed.View, bool)
	PlayPause() error
	Play() error
	Pause() error
}

// PlaybackStatus is the MPRIS status of a card.
type PlaybackStatus int

const (
	StatusStopped PlaybackStatus = iota
	StatusPlaying
	StatusPaused
)

// Status maps an instance view to its MPRIS status. A card that never
// became ready, or whose player ended, reports Stopped. A failed command on
// a ready card does not change its status.
func Status(v embed.View) PlaybackStatus {
	switch {
	case !v.IsReady:
		return StatusStopped
	case v.IsPlaying:
		return StatusPlaying
	case v.State == embed.Paused || v.State == embed.Cued:
		return StatusPaused
	default:
		return StatusStopped
	}
}

// ArtURL returns the provider thumbnail of a content id.
func ArtURL(contentID string) string {
	if contentID == "" {
		return ""
	}
	return "https://i.ytimg.com/vi/" + contentID + "/hqdefault.jpg"
}
