// Package jsonfile persists the translation history as a single JSON document
// per directory. Every append is a whole-file read-modify-write; at the
// 1000-record cap this is fine, but it is a known scalability ceiling, not a
// pattern to generalize. Single-process only: operations are serialized by an
// internal mutex, there is no cross-process file locking.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kazukinakai/neural-translator/internal/domain"
	"github.com/kazukinakai/neural-translator/internal/ports"
)

type Store struct {
	mu         sync.Mutex
	defaultDir string
	log        *zap.SugaredLogger

	now   func() time.Time
	newID func(ts int64) string
}

// New returns a store rooted at defaultDir; empty means the per-OS default.
func New(defaultDir string, log *zap.SugaredLogger) *Store {
	if defaultDir == "" {
		defaultDir = DefaultDir()
	}
	return &Store{
		defaultDir: defaultDir,
		log:        log,
		now:        time.Now,
		newID:      recordID,
	}
}

// DefaultDir returns the OS-conventional per-user history location.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin", "windows":
		return filepath.Join(home, "Documents", "NeuraL")
	default:
		return filepath.Join(home, ".local", "share", "NeuraL")
	}
}

// recordID is time-prefixed with a random suffix so records created within
// the same second do not collide.
func recordID(ts int64) string {
	return fmt.Sprintf("%d_%s", ts, uuid.NewString()[:8])
}

func (s *Store) filePath(dir string) string {
	if dir == "" {
		dir = s.defaultDir
	}
	return filepath.Join(dir, domain.HistoryFileName)
}

// readDocument loads the document at path. Absence is not an error: ok is
// false and doc is zero. A malformed document is a hard CorruptHistoryError.
func readDocument(path string) (doc domain.HistoryDocument, ok bool, err error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return domain.HistoryDocument{}, false, nil
	}
	if err != nil {
		return domain.HistoryDocument{}, false, fmt.Errorf("read history file: %w", err)
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.HistoryDocument{}, false, &domain.CorruptHistoryError{Path: path, Err: err}
	}
	return doc, true, nil
}

// Append assigns id and timestamp, enforces the record cap by dropping the
// oldest-inserted entries, and rewrites the whole document.
func (s *Store) Append(ctx context.Context, rec ports.AppendRecord, dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.filePath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create history directory: %w", err)
	}

	ts := s.now().Unix()
	doc, exists, err := readDocument(path)
	if err != nil {
		return "", err
	}
	if !exists {
		doc = domain.HistoryDocument{Version: domain.HistoryVersion, CreatedAt: ts}
	}

	entry := domain.HistoryRecord{
		ID:             s.newID(ts),
		Timestamp:      ts,
		SourceText:     rec.SourceText,
		TranslatedText: rec.TranslatedText,
		FromLanguage:   rec.FromLanguage,
		ToLanguage:     rec.ToLanguage,
		Engine:         rec.Engine,
		LatencyMS:      rec.LatencyMS,
	}
	doc.Records = append(doc.Records, entry)
	doc.UpdatedAt = ts

	// FIFO eviction by insertion order, not by timestamp.
	if len(doc.Records) > domain.MaxHistoryRecords {
		doc.Records = doc.Records[len(doc.Records)-domain.MaxHistoryRecords:]
	}

	b, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize history: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write history file: %w", err)
	}
	s.log.Debugw("history record appended", "id", entry.ID, "records", len(doc.Records))
	return entry.ID, nil
}

// Load returns records newest-timestamp-first. limit <= 0 means all. A
// missing document yields an empty slice.
func (s *Store) Load(ctx context.Context, dir string, limit int) ([]domain.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists, err := readDocument(s.filePath(dir))
	if err != nil {
		return nil, err
	}
	if !exists {
		return []domain.HistoryRecord{}, nil
	}
	records := make([]domain.HistoryRecord, len(doc.Records))
	copy(records, doc.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Clear deletes the document file. A missing file is success.
func (s *Store) Clear(ctx context.Context, dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filePath(dir))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete history file: %w", err)
	}
	return nil
}

// Stats summarizes the document; zeroed fields when none exists.
func (s *Store) Stats(ctx context.Context, dir string) (domain.HistoryStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists, err := readDocument(s.filePath(dir))
	if err != nil {
		return domain.HistoryStats{}, err
	}
	if !exists {
		return domain.HistoryStats{}, nil
	}
	return domain.HistoryStats{
		Count:     len(doc.Records),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		Version:   doc.Version,
	}, nil
}
