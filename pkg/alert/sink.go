package alert

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Sink receives formatted alert lines.
type Sink interface {
	Write(line string) error
}

// FileSink appends alert lines to a plain text file, creating it if absent.
type FileSink struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// OpenFile opens path for appending.
func OpenFile(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open alert log %s: %w", path, err)
	}
	return &FileSink{f: f, path: path}, nil
}

// Write appends one newline-terminated line.
func (s *FileSink) Write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return fmt.Errorf("alert log %s is closed", s.path)
	}
	if _, err := io.WriteString(s.f, line+"\n"); err != nil {
		return fmt.Errorf("write alert log %s: %w", s.path, err)
	}
	return nil
}

// Path returns the file path.
func (s *FileSink) Path() string {
	return s.path
}

// Close closes the file. Further writes fail.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// ConsoleSink prints alert lines, highlighted when the output is a terminal.
type ConsoleSink struct {
	w     io.Writer
	paint *color.Color
}

// NewConsole creates a console sink on w. Colour follows fatih/color's
// terminal detection.
func NewConsole(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		w:     w,
		paint: color.New(color.FgHiRed, color.Bold),
	}
}

// Stdout is a console sink on standard output.
func Stdout() *ConsoleSink {
	return NewConsole(color.Output)
}

// Write prints one line.
func (s *ConsoleSink) Write(line string) error {
	_, err := s.paint.Fprintln(s.w, line)
	return err
}
