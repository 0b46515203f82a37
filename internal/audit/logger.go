package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const auditFileName = "audit.log"

// Entry is one JSONL line in audit.log.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id,omitempty"`
	Metadata  any       `json:"metadata,omitempty"`
}

type Logger struct {
	path string
	mu   sync.Mutex
}

func New(dataDir string) *Logger {
	return &Logger{path: filepath.Join(dataDir, auditFileName)}
}

func (l *Logger) Log(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(entry)
}

// List returns the recorded entries for one username, newest first, capped
// at limit.
func (l *Logger) List(username string, limit int) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var all []Entry
	dec := json.NewDecoder(f)
	for dec.More() {
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return nil, err
		}
		if e.Username == username {
			all = append(all, e)
		}
	}

	out := make([]Entry, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
