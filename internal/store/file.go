package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnavailable marks storage-layer faults. A corrupt or unreadable file is
// reported as this, never as an empty result: an empty ledger and an
// unreadable one mean very different things for double-booking checks.
var ErrUnavailable = errors.New("storage unavailable")

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// ensureFile creates the data dir and seeds path with initial content when
// the file does not exist yet.
func ensureFile(path string, initial any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return unavailable(err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return unavailable(err)
	}
	return writeFileJSON(path, initial)
}

func readFileJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return unavailable(err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return unavailable(err)
	}
	return nil
}

// writeFileJSON writes via a temp file and rename so readers never observe a
// half-written document.
func writeFileJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return unavailable(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return unavailable(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return unavailable(err)
	}
	if err := tmp.Close(); err != nil {
		return unavailable(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return unavailable(err)
	}
	return nil
}
