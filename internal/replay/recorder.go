package replay

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vovakirdan/tui-robots/internal/robots"
)

// FileRecorder appends one command per line to a file, flushing after every
// record so a crash loses at most the current tick.
type FileRecorder struct {
	mu   sync.Mutex
	file *os.File
	w    *bufio.Writer
	path string
}

// Create truncates or creates the log at path, creating parent directories.
func Create(path string) (*FileRecorder, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("replay: create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: create log: %w", err)
	}
	return &FileRecorder{file: f, w: bufio.NewWriter(f), path: path}, nil
}

// Record writes cmd and flushes it.
func (r *FileRecorder) Record(cmd robots.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return errors.New("replay: recorder closed")
	}
	if _, err := r.w.WriteString(cmd.String() + "\n"); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("replay: flush: %w", err)
	}
	return nil
}

// Path returns the file being written.
func (r *FileRecorder) Path() string { return r.path }

// Close flushes and closes the file. It is safe to call more than once.
func (r *FileRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	flushErr := r.w.Flush()
	closeErr := r.file.Close()
	r.file = nil
	if flushErr != nil {
		return fmt.Errorf("replay: flush: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("replay: close: %w", closeErr)
	}
	return nil
}

// MemoryRecorder keeps the applied commands in memory.
type MemoryRecorder struct {
	cmds []robots.Command
}

// Record appends cmd. It never fails.
func (m *MemoryRecorder) Record(cmd robots.Command) error {
	m.cmds = append(m.cmds, cmd)
	return nil
}

// Commands returns a copy of everything recorded so far.
func (m *MemoryRecorder) Commands() []robots.Command {
	return append([]robots.Command(nil), m.cmds...)
}

// Len returns the number of recorded commands.
func (m *MemoryRecorder) Len() int { return len(m.cmds) }

// String returns the recording in log form.
func (m *MemoryRecorder) String() string { return Format(m.cmds) }

// MultiSink fans one command out to several sinks. A sink that fails is
// dropped and the others keep recording; Record only fails once every sink
// has failed.
type MultiSink struct {
	sinks []robots.Sink
	errs  []error
}

// NewMultiSink combines sinks, skipping nil ones.
func NewMultiSink(sinks ...robots.Sink) *MultiSink {
	m := &MultiSink{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Record forwards cmd to each remaining sink.
func (m *MultiSink) Record(cmd robots.Command) error {
	live := m.sinks[:0]
	for _, sink := range m.sinks {
		if err := sink.Record(cmd); err != nil {
			m.errs = append(m.errs, err)
			continue
		}
		live = append(live, sink)
	}
	m.sinks = live
	if len(m.sinks) == 0 && len(m.errs) > 0 {
		return m.errs[0]
	}
	return nil
}

// Err joins the errors of every dropped sink.
func (m *MultiSink) Err() error {
	return errors.Join(m.errs...)
}
