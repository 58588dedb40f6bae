package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/yourname/sleeplog/internal"
)

var validate = validator.New()

// storedEntry mirrors internal.SleepEntry with pointer fields so a missing
// key can be told apart from a zero value.
type storedEntry struct {
	SleepTime     *internal.Timestamp `json:"sleep_time" validate:"required"`
	WakeTime      *internal.Timestamp `json:"wake_time" validate:"required"`
	DurationHours *float64            `json:"duration_hours" validate:"required"`
}

// recordKeys is the exact, case-sensitive key set of a stored record.
// encoding/json matches struct tags case-insensitively, so the key names are
// checked before decoding.
var recordKeys = map[string]bool{
	"sleep_time":     true,
	"wake_time":      true,
	"duration_hours": true,
}

type FileStorage struct {
	path   string
	logger internal.Logger
}

func NewFileStorage(path string, logger internal.Logger) (*FileStorage, error) {
	if path == "" {
		return nil, errors.New("storage: file path is required")
	}
	return &FileStorage{path: path, logger: logger}, nil
}

func (s *FileStorage) Path() string {
	return s.path
}

// Load reads the whole log. A missing or empty file is an empty log.
func (s *FileStorage) Load(ctx context.Context) ([]internal.SleepEntry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debugf("storage: %s does not exist, starting empty", s.path)
			return []internal.SleepEntry{}, nil
		}
		s.logger.Errorf("storage: failed to read %s: %v", s.path, err)
		return nil, fmt.Errorf("storage: read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []internal.SleepEntry{}, nil
	}

	entries, err := decodeEntries(raw)
	if err != nil {
		s.logger.Errorf("storage: %s: %v", s.path, err)
		return nil, err
	}
	s.logger.Debugf("storage: loaded %d entries from %s", len(entries), s.path)
	return entries, nil
}

func decodeEntries(raw []byte) ([]internal.SleepEntry, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("storage: %w: %v", internal.ErrCorruptStore, err)
	}
	// a literal null decodes to a nil slice
	if records == nil {
		return nil, fmt.Errorf("storage: %w: top-level value is not an array", internal.ErrCorruptStore)
	}

	entries := make([]internal.SleepEntry, 0, len(records))
	for i, rec := range records {
		if err := checkKeys(rec); err != nil {
			return nil, fmt.Errorf("storage: %w: record %d: %v", internal.ErrCorruptStore, i, err)
		}

		dec := json.NewDecoder(bytes.NewReader(rec))
		dec.DisallowUnknownFields()

		var se storedEntry
		if err := dec.Decode(&se); err != nil {
			return nil, fmt.Errorf("storage: %w: record %d: %v", internal.ErrCorruptStore, i, err)
		}
		if err := validate.Struct(&se); err != nil {
			return nil, fmt.Errorf("storage: %w: record %d: %v", internal.ErrCorruptStore, i, err)
		}
		entries = append(entries, internal.SleepEntry{
			SleepTime:     *se.SleepTime,
			WakeTime:      *se.WakeTime,
			DurationHours: *se.DurationHours,
		})
	}
	return entries, nil
}

func checkKeys(rec json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rec, &fields); err != nil {
		return err
	}
	for k := range fields {
		if !recordKeys[k] {
			return fmt.Errorf("unexpected key %q", k)
		}
	}
	return nil
}

// Save overwrites the file with the full log.
func (s *FileStorage) Save(ctx context.Context, entries []internal.SleepEntry) error {
	if entries == nil {
		entries = []internal.SleepEntry{}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Errorf("storage: failed to create %s: %v", dir, err)
			return fmt.Errorf("storage: %w: %w", internal.ErrWrite, err)
		}
	}
	if err := atomicWriteFileJSON(s.path, entries); err != nil {
		s.logger.Errorf("storage: error saving sleep log: %v", err)
		return fmt.Errorf("storage: %w: %w", internal.ErrWrite, err)
	}
	s.logger.Debugf("storage: saved %d entries to %s", len(entries), s.path)
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

var _ SleepLogRepository = (*FileStorage)(nil)
