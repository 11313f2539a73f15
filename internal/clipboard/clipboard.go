// Package clipboard copies readings to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// Write implements Writer.
func (f WriterFunc) Write(text string) error { return f(text) }

// System writes to the OS clipboard through pbcopy, xclip, xsel,
// wl-copy or clip.
type System struct {
	lookPath func(string) (string, error)
	goos     string
}

// NewSystem returns the OS clipboard writer.
func NewSystem() *System {
	return &System{lookPath: exec.LookPath, goos: runtime.GOOS}
}

// command picks the clipboard tool for the platform.
func (s *System) command() ([]string, error) {
	var candidates [][]string
	switch s.goos {
	case "darwin":
		candidates = [][]string{{"pbcopy"}}
	case "windows":
		return []string{"cmd", "/c", "clip"}, nil
	default:
		candidates = [][]string{
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
			{"wl-copy"},
		}
	}
	for _, c := range candidates {
		if _, err := s.lookPath(c[0]); err == nil {
			return c, nil
		}
	}
	return nil, ErrUnavailable
}

// Write copies text to the system clipboard.
func (s *System) Write(text string) error {
	args, err := s.command()
	if err != nil {
		return err
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", args[0], err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func (s *System) Available() bool {
	_, err := s.command()
	return err == nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	return NewSystem().Write(text)
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return NewSystem().Available()
}
