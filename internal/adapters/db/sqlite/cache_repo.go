package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/kazukinakai/neural-translator/internal/domain"
)

// CacheRepo stores previously served translations keyed on the exact source
// text and language pair. A hit skips the inference server entirely.
type CacheRepo struct{ *Repo }

func NewCacheRepo(db *sql.DB) *CacheRepo { return &CacheRepo{NewRepo(db)} }

func (r *CacheRepo) Get(ctx context.Context, src, fromLang, toLang string) (*domain.CacheEntry, error) {
	q := r.SQ.Select(
		"id",
		"source_text",
		"from_lang",
		"to_lang",
		"model",
		"translation",
		"created_at",
	).
		From("translation_cache").
		Where(sq.Eq{
			"source_text": src,
			"from_lang":   fromLang,
			"to_lang":     toLang,
		}).
		Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var e domain.CacheEntry
	var created string
	if err := row.Scan(
		&e.ID,
		&e.SourceText,
		&e.FromLang,
		&e.ToLang,
		&e.Model,
		&e.Translation,
		&created,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &e, nil
}

func (r *CacheRepo) Put(ctx context.Context, entry *domain.CacheEntry) error {
	q := r.SQ.
		Insert("translation_cache").
		Columns(
			"source_text",
			"from_lang",
			"to_lang",
			"model",
			"translation",
			"created_at",
		).
		Values(
			entry.SourceText,
			entry.FromLang,
			entry.ToLang,
			entry.Model,
			entry.Translation,
			time.Now().UTC().Format(time.RFC3339),
		).
		Suffix("ON CONFLICT(source_text, from_lang, to_lang) DO UPDATE SET translation=excluded.translation, model=excluded.model")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}
