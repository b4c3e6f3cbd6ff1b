// Package snapshot stores rendered frames on disk so they can be listed and
// shown again without the scene that produced them.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"chardraw/internal/terminal"
)

var (
	// ErrNotFound is returned when no snapshot matches an ID.
	ErrNotFound = errors.New("snapshot not found")
	// ErrAmbiguous is returned when an ID prefix matches several snapshots.
	ErrAmbiguous = errors.New("snapshot id is ambiguous")
)

// Snapshot is one rendered frame.
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Lines     []string  `json:"lines"`
}

// New captures the content of buf.
func New(name string, buf *terminal.Buffer) *Snapshot {
	rows, cols := buf.Size()
	return &Snapshot{
		ID:        uuid.New().String(),
		Name:      generateName(name),
		CreatedAt: time.Now(),
		Rows:      rows,
		Cols:      cols,
		Lines:     buf.Lines(),
	}
}

// String returns the frame text.
func (s *Snapshot) String() string {
	lines := s.Lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// generateName cleans up a snapshot name and keeps it to one short line.
func generateName(name string) string {
	const maxLength = 50

	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", "")
	if terminal.StringWidth(name) > maxLength {
		name = terminal.Truncate(name, maxLength-3) + "..."
	}
	return name
}

// Store keeps snapshots as JSON files in one directory.
type Store struct {
	dir string
}

// DefaultDir returns the default directory for storing snapshots.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".chardraw", "snapshots"), nil
}

// NewStore opens the store in dir, creating the directory if needed. An
// empty dir selects DefaultDir.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshots directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store directory.
func (st *Store) Dir() string {
	return st.dir
}

func (st *Store) path(id string) string {
	return filepath.Join(st.dir, id+".json")
}

// Save writes s, replacing any snapshot with the same ID.
func (st *Store) Save(s *Snapshot) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return saveSnapshot(st.path(s.ID), s)
}

// Get loads the snapshot with the given ID.
func (st *Store) Get(id string) (*Snapshot, error) {
	s, err := loadSnapshot(st.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return s, err
}

// Find resolves a full ID or a unique ID prefix.
func (st *Store) Find(ref string) (*Snapshot, error) {
	if s, err := st.Get(ref); err == nil || !errors.Is(err, ErrNotFound) {
		return s, err
	}
	all, err := st.List()
	if err != nil {
		return nil, err
	}
	var match *Snapshot
	for _, s := range all {
		if !strings.HasPrefix(s.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%s: %w", ref, ErrAmbiguous)
		}
		match = s
	}
	if match == nil {
		return nil, fmt.Errorf("%s: %w", ref, ErrNotFound)
	}
	return match, nil
}

// List returns all snapshots, newest first. Unreadable files are skipped.
func (st *Store) List() ([]*Snapshot, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshots directory: %w", err)
	}

	var snapshots []*Snapshot
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		s, err := loadSnapshot(filepath.Join(st.dir, entry.Name()))
		if err != nil {
			continue
		}
		snapshots = append(snapshots, s)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].CreatedAt.After(snapshots[j].CreatedAt)
	})
	return snapshots, nil
}

// Delete removes the snapshot with the given ID.
func (st *Store) Delete(id string) error {
	if err := os.Remove(st.path(id)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
