// Package deps checks for the external binaries the widget runtime drives.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary podcards relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Path        string
	Detail      string
}

// Runtime returns the requirements of the mpv widget runtime for the given
// commands. Empty commands fall back to the binary names.
func Runtime(mpvCmd, ytdlpCmd string) []Requirement {
	if strings.TrimSpace(mpvCmd) == "" {
		mpvCmd = "mpv"
	}
	if strings.TrimSpace(ytdlpCmd) == "" {
		ytdlpCmd = "yt-dlp"
	}
	return []Requirement{
		{Name: "mpv", Command: mpvCmd, Description: "media player driving each card"},
		{Name: "yt-dlp", Command: ytdlpCmd, Description: "stream resolver used by mpv"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// Missing returns an error naming every required binary that is unavailable.
func Missing(statuses []Status) error {
	var missing []string
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			missing = append(missing, s.Detail)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing dependencies: %s", strings.Join(missing, "; "))
}
