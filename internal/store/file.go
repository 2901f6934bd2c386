package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"accountkeeper/internal/logger"
)

// fileKV persists the key-value records as a single JSON object file, one
// property per record key. This mirrors the shape of a browser's local
// storage dump, so a file written by another implementation of the same
// records loads unchanged.
type fileKV struct {
	path   string
	logger *logger.Logger

	mu      sync.RWMutex
	records map[string]json.RawMessage
}

// NewFileKV opens (or lazily creates) the JSON store file at path. A missing
// file starts empty; a corrupted file is logged and also starts empty, per
// the recover-to-default storage policy.
func NewFileKV(path string, logger *logger.Logger) (KV, error) {
	if path == "" {
		return nil, fmt.Errorf("file store: empty path")
	}

	s := &fileKV{
		path:    path,
		logger:  logger,
		records: make(map[string]json.RawMessage),
	}
	s.load()
	return s, nil
}

func (s *fileKV) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("read store file failed, starting empty")
		}
		return
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("corrupted store file, starting empty")
		return
	}
	if records != nil {
		s.records = records
	}
}

// persist writes the whole record map back to disk. Caller must hold mu.
func (s *fileKV) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	return nil
}

func (s *fileKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *fileKV) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := make([]byte, len(value))
	copy(raw, value)
	s.records[key] = raw

	return s.persist()
}

func (s *fileKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; !ok {
		return nil
	}
	delete(s.records, key)

	return s.persist()
}

func (s *fileKV) Close() error {
	return nil
}
