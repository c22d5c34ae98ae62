package scene

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes raw scene file contents.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Watcher reloads a scene file when its contents change. It is polled from
// the game loop and is not safe for concurrent use.
type Watcher struct {
	path   string
	last   uint64
	loaded bool
}

// NewWatcher creates a watcher for path. Nothing is read until Poll.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: path}
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Poll reads the file and returns the parsed config with changed set when the
// contents differ from the last successful load. The first successful poll
// always reports a change. A file that fails to parse is not remembered, so
// it is retried on the next poll.
func (w *Watcher) Poll() (*Config, bool, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, false, err
	}
	sum := Fingerprint(data)
	if w.loaded && sum == w.last {
		return nil, false, nil
	}
	cfg, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("loading %q: %w", w.path, err)
	}
	w.last = sum
	w.loaded = true
	return cfg, true, nil
}
