// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Card list navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Card actions
	ActionPlayPause        Action = "play_pause"
	ActionToggleHighlights Action = "toggle_highlights"
)

// Bindings are the default key bindings.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	{ActionMoveUp, []string{"k", "up"}, "Previous card", "cards"},
	{ActionMoveDown, []string{"j", "down"}, "Next card", "cards"},
	{ActionJumpStart, []string{"g", "home"}, "First card", "cards"},
	{ActionJumpEnd, []string{"G", "end"}, "Last card", "cards"},

	{ActionPlayPause, []string{" ", "space", "enter"}, "Play/pause", "card"},
	{ActionToggleHighlights, []string{"h"}, "Show/hide highlights", "card"},
}
