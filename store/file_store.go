package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	yaml "gopkg.in/yaml.v3"

	"taskmaster/models"
	"taskmaster/types"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"

	checksumSuffix = ".checksum"
)

// FileTaskStore persists the task list to a single file in JSON, YAML or
// TOML form. Writes are atomic (temp file + rename) and guarded by a file
// lock; a SHA-256 sidecar checksum is verified on load.
type FileTaskStore struct {
	taskList
	filePath string
	format   string
	flk      *flock.Flock
}

// NewFileTaskStore creates a file-backed store for the given path and
// format. The parent directory is created if needed.
func NewFileTaskStore(filePath, format string) (*FileTaskStore, error) {
	switch strings.ToLower(format) {
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return nil, fmt.Errorf("unsupported data format: %s (supported: json, yaml, toml)", format)
	}

	dir := filepath.Dir(filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &types.PersistenceError{Op: "load", Path: filePath, Err: err}
		}
	}

	return &FileTaskStore{
		filePath: filePath,
		format:   strings.ToLower(format),
		flk:      flock.New(filePath + ".lock"),
	}, nil
}

// Path returns the data file path.
func (s *FileTaskStore) Path() string {
	return s.filePath
}

// Load reads the task list from the data file. A missing or empty file
// yields an empty list.
func (s *FileTaskStore) Load() error {
	if err := s.flk.Lock(); err != nil {
		return &types.PersistenceError{Op: "load", Path: s.filePath, Err: err}
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.replace(nil)
			return nil
		}
		return &types.PersistenceError{Op: "load", Path: s.filePath, Err: err}
	}

	if err := s.verifyChecksum(data); err != nil {
		return &types.PersistenceError{Op: "load", Path: s.filePath, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.replace(nil)
		return nil
	}

	var list models.TaskList
	switch s.format {
	case FormatJSON:
		err = json.Unmarshal(data, &list)
	case FormatYAML:
		err = yaml.Unmarshal(data, &list)
	case FormatTOML:
		err = toml.Unmarshal(data, &list)
	}
	if err != nil {
		return &types.PersistenceError{Op: "load", Path: s.filePath, Err: err}
	}

	tasks, err := normalizeLoaded(list.Tasks)
	if err != nil {
		return &types.PersistenceError{Op: "load", Path: s.filePath, Err: err}
	}
	s.replace(tasks)
	return nil
}

// Save serializes the full list and writes it atomically, then refreshes
// the sidecar checksum.
func (s *FileTaskStore) Save() error {
	if err := s.flk.Lock(); err != nil {
		return &types.PersistenceError{Op: "save", Path: s.filePath, Err: err}
	}
	defer func() { _ = s.flk.Unlock() }()

	list := models.TaskList{Tasks: s.tasks}
	if list.Tasks == nil {
		list.Tasks = []models.Task{}
	}

	var data []byte
	var err error
	switch s.format {
	case FormatJSON:
		data, err = json.MarshalIndent(list, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(list)
	case FormatTOML:
		buf := new(bytes.Buffer)
		if encErr := toml.NewEncoder(buf).Encode(list); encErr != nil {
			err = encErr
		} else {
			data = buf.Bytes()
		}
	}
	if err != nil {
		return &types.PersistenceError{Op: "save", Path: s.filePath, Err: err}
	}

	tempPath := s.filePath + ".tmp"
	defer func() { _ = os.Remove(tempPath) }()

	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return &types.PersistenceError{Op: "save", Path: s.filePath, Err: err}
	}
	if err := os.Rename(tempPath, s.filePath); err != nil {
		return &types.PersistenceError{Op: "save", Path: s.filePath, Err: err}
	}

	// The data file is already in place; a failed checksum write only
	// degrades the next load to an unchecked one.
	checksum := calculateChecksum(data)
	if err := os.WriteFile(s.filePath+checksumSuffix, []byte(checksum), 0o644); err != nil {
		return &types.PersistenceError{Op: "save", Path: s.filePath + checksumSuffix, Err: err}
	}
	return nil
}

// Close releases the file lock. Unlock is idempotent.
func (s *FileTaskStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}

// verifyChecksum compares the data against the sidecar checksum if one
// exists. Files from before checksums were introduced load unchecked.
func (s *FileTaskStore) verifyChecksum(data []byte) error {
	checksumPath := s.filePath + checksumSuffix
	expected, err := os.ReadFile(checksumPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	want := strings.TrimSpace(string(expected))
	got := calculateChecksum(data)
	if want != got {
		return fmt.Errorf("checksum mismatch: expected %s, got %s - file is corrupt or was modified outside taskmaster", want, got)
	}
	return nil
}

func calculateChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
