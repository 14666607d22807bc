// Package clipboard reads the primary selection through external clipboard
// tools, trying the wayland tool first and falling back to the x11 ones.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"
)

var ErrNoSelection = errors.New("no text selected or clipboard unavailable")

var tools = [][]string{
	{"wl-paste", "--primary", "--no-newline"},
	{"xsel", "-o", "-p"},
	{"xclip", "-o", "-selection", "primary"},
}

// ReadSelection returns the first non-empty trimmed selection any of the
// tools produces, or ErrNoSelection when none of them do.
func ReadSelection() (string, error) {
	for _, tool := range tools {
		out, err := exec.Command(tool[0], tool[1:]...).Output()
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			return text, nil
		}
	}
	return "", ErrNoSelection
}
