package ports

import (
	"context"

	"github.com/kazukinakai/neural-translator/internal/domain"
)

// AppendRecord holds the caller-supplied fields of a new history record.
// ID and timestamp are assigned by the store.
type AppendRecord struct {
	SourceText     string
	TranslatedText string
	FromLanguage   string
	ToLanguage     string
	Engine         string
	LatencyMS      *int64
}

// HistoryStore persists the bounded translation log. dir overrides the
// per-OS default history directory when non-empty.
type HistoryStore interface {
	Append(ctx context.Context, rec AppendRecord, dir string) (string, error)
	Load(ctx context.Context, dir string, limit int) ([]domain.HistoryRecord, error)
	Clear(ctx context.Context, dir string) error
	Stats(ctx context.Context, dir string) (domain.HistoryStats, error)
}

type CacheRepository interface {
	Get(ctx context.Context, src, fromLang, toLang string) (*domain.CacheEntry, error)
	Put(ctx context.Context, entry *domain.CacheEntry) error
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
}
