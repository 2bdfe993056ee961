// Package icons holds the glyphs of the play button and card decorations.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play       string
	Pause      string
	Error      string
	Closed     string
	Guest      string
	Highlight  string
	NowPlaying string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b", // nf-fa-play
		Pause:      "\uf04c", // nf-fa-pause
		Error:      "\uf071", // nf-fa-warning
		Closed:     "\uf04d", // nf-fa-stop
		Guest:      "\uf130", // nf-fa-microphone
		Highlight:  "\uf005", // nf-fa-star
		NowPlaying: "\uf001", // nf-fa-music
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Error:      "✗",
		Closed:     "■",
		Guest:      "",
		Highlight:  "•",
		NowPlaying: "♪",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Error:      "!",
		Closed:     "x",
		Guest:      "",
		Highlight:  "-",
		NowPlaying: "*",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon style. Unknown styles fall back to unicode.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = unicodeIcons
	}
}

func Play() string       { return current.Play }
func Pause() string      { return current.Pause }
func Error() string      { return current.Error }
func Closed() string     { return current.Closed }
func Highlight() string  { return current.Highlight }
func NowPlaying() string { return current.NowPlaying }

// Guest returns the prefix of the guest line, with its separator. It is
// empty when the style has no guest glyph.
func Guest() string {
	if current.Guest == "" {
		return ""
	}
	return current.Guest + " "
}
