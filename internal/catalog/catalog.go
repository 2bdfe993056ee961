// Package catalog holds the podcast episodes shown as cards.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Link is a guest profile link.
type Link struct {
	Label string `koanf:"label"`
	URL   string `koanf:"url"`
}

// Episode is one podcast episode.
type Episode struct {
	ID          int      `koanf:"id"`
	Title       string   `koanf:"title"`
	Description string   `koanf:"description"`
	ContentID   string   `koanf:"content_id"` // provider video id
	Published   string   `koanf:"published_at"`
	GuestName   string   `koanf:"guest_name"`
	GuestBio    []string `koanf:"guest_bio"`
	Highlights  []string `koanf:"highlights"`
	GuestLinks  []Link   `koanf:"guest_links"`

	PublishedAt time.Time `koanf:"-"`
}

// ContainerID is the stable container id of the episode's card.
func (e Episode) ContainerID() string {
	return "podcast-player-" + strconv.Itoa(e.ID)
}

type episodesFile struct {
	Episodes []Episode `koanf:"episodes"`
}

// Load reads episodes from a TOML file with [[episodes]] tables. An empty
// path or a missing file yields the built-in catalog.
func Load(path string) ([]Episode, error) {
	if path == "" {
		return Sorted(Builtin()), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Sorted(Builtin()), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load episodes %s: %w", path, err)
	}

	var f episodesFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, fmt.Errorf("decode episodes %s: %w", path, err)
	}

	seen := make(map[int]bool, len(f.Episodes))
	for i := range f.Episodes {
		ep := &f.Episodes[i]
		if ep.ContentID == "" {
			return nil, fmt.Errorf("episode %d (%q): missing content_id", ep.ID, ep.Title)
		}
		if seen[ep.ID] {
			return nil, fmt.Errorf("duplicate episode id %d", ep.ID)
		}
		seen[ep.ID] = true
		ep.PublishedAt = ParsePublishedAt(ep.Published)
	}
	return Sorted(f.Episodes), nil
}

// Sorted returns the episodes newest first. Ties keep their input order.
func Sorted(eps []Episode) []Episode {
	out := append([]Episode(nil), eps...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

// ParsePublishedAt parses a publication timestamp. RFC 3339 and
// "2006-01-02T15:04:05" are tried first; otherwise the value is split into
// date and time components with missing or invalid parts defaulted.
// Times without a zone are local.
func ParsePublishedAt(value string) time.Time {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}

	datePart, timePart, _ := strings.Cut(strings.Replace(value, " ", "T", 1), "T")
	date := splitInts(datePart, "-", []int{0, 1, 1})
	clock := splitInts(timePart, ":", []int{0, 0, 0})

	month := time.Month(max(date[1], 1))
	return time.Date(date[0], month, date[2], clock[0], clock[1], clock[2], 0, time.Local)
}

func splitInts(s, sep string, defaults []int) []int {
	out := append([]int(nil), defaults...)
	if s == "" {
		return out
	}
	for i, part := range strings.SplitN(s, sep, len(defaults)) {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			out[i] = n
		}
	}
	return out
}

// SocialLink is a link with the platform it was matched to.
type SocialLink struct {
	Link
	Platform string // "farcaster", "twitter", "telegram"
	Title    string
}

// SocialLinks returns the first non-empty Farcaster, Twitter/X and Telegram
// links, in that order.
func (e Episode) SocialLinks() []SocialLink {
	find := func(match func(label string) bool) (Link, bool) {
		for _, l := range e.GuestLinks {
			if l.URL != "" && match(strings.ToLower(l.Label)) {
				return l, true
			}
		}
		return Link{}, false
	}

	var out []SocialLink
	if l, ok := find(func(s string) bool { return strings.Contains(s, "farcaster") }); ok {
		out = append(out, SocialLink{Link: l, Platform: "farcaster", Title: "Farcaster profile"})
	}
	if l, ok := find(func(s string) bool { return strings.Contains(s, "twitter") || s == "x" }); ok {
		out = append(out, SocialLink{Link: l, Platform: "twitter", Title: "Twitter profile"})
	}
	if l, ok := find(func(s string) bool { return strings.Contains(s, "telegram") }); ok {
		out = append(out, SocialLink{Link: l, Platform: "telegram", Title: "Telegram profile"})
	}
	return out
}
