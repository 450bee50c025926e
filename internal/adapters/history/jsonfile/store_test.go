package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kazukinakai/neural-translator/internal/domain"
	"github.com/kazukinakai/neural-translator/internal/ports"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return New(dir, zap.NewNop().Sugar()), dir
}

func rec(src string) ports.AppendRecord {
	return ports.AppendRecord{
		SourceText:     src,
		TranslatedText: src + " translated",
		FromLanguage:   "en",
		ToLanguage:     "ja",
		Engine:         "aya:8b",
	}
}

func TestAppendCreatesDirectoryAndDocument(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "nested", "history")
	s := New(dir, zap.NewNop().Sugar())

	id, err := s.Append(context.Background(), rec("hello"), "")
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}
	if _, err := os.Stat(filepath.Join(dir, domain.HistoryFileName)); err != nil {
		t.Fatalf("history file not created: %v", err)
	}
}

func TestAppendIDsAreUniqueWithinOneSecond(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Unix(1700000000, 0)
	s.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := s.Append(context.Background(), rec("x"), "")
		if err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestCapEvictsOldestInserted(t *testing.T) {
	s, _ := newTestStore(t)
	// Run the clock backwards so the first-inserted record carries the
	// highest timestamp. Eviction must still drop it: the cap is FIFO by
	// insertion order, not by timestamp.
	ts := int64(2000000000)
	s.now = func() time.Time { ts--; return time.Unix(ts, 0) }

	ctx := context.Background()
	for i := 0; i <= domain.MaxHistoryRecords; i++ {
		if _, err := s.Append(ctx, rec(fmt.Sprintf("msg-%d", i)), ""); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	stats, err := s.Stats(ctx, "")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Count != domain.MaxHistoryRecords {
		t.Fatalf("expected %d records, got %d", domain.MaxHistoryRecords, stats.Count)
	}

	records, err := s.Load(ctx, "", 0)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	for _, r := range records {
		if r.SourceText == "msg-0" {
			t.Fatal("first-inserted record should have been evicted")
		}
	}
}

func TestLoadNewestFirstWithLimit(t *testing.T) {
	s, _ := newTestStore(t)
	ts := int64(1700000000)
	s.now = func() time.Time { ts++; return time.Unix(ts, 0) }

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		if _, err := s.Append(ctx, rec(fmt.Sprintf("msg-%d", i)), ""); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	records, err := s.Load(ctx, "", 5)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	if records[0].SourceText != "msg-19" {
		t.Fatalf("expected newest record first, got %q", records[0].SourceText)
	}
	for i := 1; i < len(records); i++ {
		if records[i].Timestamp > records[i-1].Timestamp {
			t.Fatal("records not sorted newest first")
		}
	}
}

func TestLoadMissingDocumentReturnsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	records, err := s.Load(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}
}

func TestClearMissingDocumentIsSuccess(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.Clear(context.Background(), ""); err != nil {
		t.Fatalf("clear on empty store errored: %v", err)
	}
}

func TestClearDeletesDocument(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()
	if _, err := s.Append(ctx, rec("hello"), ""); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := s.Clear(ctx, ""); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, domain.HistoryFileName)); !os.IsNotExist(err) {
		t.Fatal("history file still present after clear")
	}
}

func TestStats(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	empty, err := s.Stats(ctx, "")
	if err != nil {
		t.Fatalf("stats on empty store errored: %v", err)
	}
	if empty.Count != 0 || empty.CreatedAt != 0 || empty.Version != "" {
		t.Fatalf("expected zeroed stats, got %+v", empty)
	}

	ts := int64(1700000000)
	s.now = func() time.Time { ts += 10; return time.Unix(ts, 0) }
	for i := 0; i < 3; i++ {
		if _, err := s.Append(ctx, rec("x"), ""); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	stats, err := s.Stats(ctx, "")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Count != 3 || stats.Version != domain.HistoryVersion {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.CreatedAt >= stats.UpdatedAt {
		t.Fatalf("created_at should predate updated_at: %+v", stats)
	}
}

func TestCorruptDocumentIsHardError(t *testing.T) {
	s, dir := newTestStore(t)
	path := filepath.Join(dir, domain.HistoryFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ctx := context.Background()
	var corrupt *domain.CorruptHistoryError
	if _, err := s.Load(ctx, "", 0); !errors.As(err, &corrupt) {
		t.Fatalf("load: expected CorruptHistoryError, got %v", err)
	}
	if _, err := s.Append(ctx, rec("x"), ""); !errors.As(err, &corrupt) {
		t.Fatalf("append: expected CorruptHistoryError, got %v", err)
	}
	if _, err := s.Stats(ctx, ""); !errors.As(err, &corrupt) {
		t.Fatalf("stats: expected CorruptHistoryError, got %v", err)
	}
}

func TestDirOverride(t *testing.T) {
	s, defaultDir := newTestStore(t)
	override := t.TempDir()
	ctx := context.Background()

	if _, err := s.Append(ctx, rec("elsewhere"), override); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(override, domain.HistoryFileName)); err != nil {
		t.Fatalf("document missing in override dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(defaultDir, domain.HistoryFileName)); !os.IsNotExist(err) {
		t.Fatal("default dir should be untouched")
	}

	records, err := s.Load(ctx, override, 0)
	if err != nil || len(records) != 1 {
		t.Fatalf("load from override dir failed: %v (%d records)", err, len(records))
	}
}
