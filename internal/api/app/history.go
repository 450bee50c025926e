package app

import (
	"context"

	"github.com/kazukinakai/neural-translator/internal/domain"
	"github.com/kazukinakai/neural-translator/internal/ports"
)

// HistoryAPI exposes the bounded history store. HistoryPath overrides the
// per-OS default directory when non-empty.
type HistoryAPI struct{ store ports.HistoryStore }

func NewHistoryAPI(store ports.HistoryStore) *HistoryAPI { return &HistoryAPI{store: store} }

type SaveHistoryRequest struct {
	SourceText     string `json:"source_text"`
	TranslatedText string `json:"translated_text"`
	FromLanguage   string `json:"from_language"`
	ToLanguage     string `json:"to_language"`
	Engine         string `json:"engine"`
	LatencyMS      *int64 `json:"latency_ms"`
	HistoryPath    string `json:"history_path"`
}

func (a *HistoryAPI) Save(req SaveHistoryRequest) (string, error) {
	return a.store.Append(context.Background(), ports.AppendRecord{
		SourceText:     req.SourceText,
		TranslatedText: req.TranslatedText,
		FromLanguage:   req.FromLanguage,
		ToLanguage:     req.ToLanguage,
		Engine:         req.Engine,
		LatencyMS:      req.LatencyMS,
	}, req.HistoryPath)
}

// Load returns records newest first; limit <= 0 means all.
func (a *HistoryAPI) Load(historyPath string, limit int) ([]domain.HistoryRecord, error) {
	return a.store.Load(context.Background(), historyPath, limit)
}

func (a *HistoryAPI) Clear(historyPath string) error {
	return a.store.Clear(context.Background(), historyPath)
}

func (a *HistoryAPI) Stats(historyPath string) (domain.HistoryStats, error) {
	return a.store.Stats(context.Background(), historyPath)
}
