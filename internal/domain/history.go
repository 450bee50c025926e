package domain

const (
	// HistoryVersion is written into every history document.
	HistoryVersion = "1.0"
	// HistoryFileName is the single document kept per history directory.
	HistoryFileName = "translation_history.json"
	// MaxHistoryRecords caps the document; oldest-inserted entries are evicted.
	MaxHistoryRecords = 1000
)

// HistoryRecord is one completed translation. Immutable once written.
type HistoryRecord struct {
	ID             string `json:"id"`
	Timestamp      int64  `json:"timestamp"`
	SourceText     string `json:"source_text"`
	TranslatedText string `json:"translated_text"`
	FromLanguage   string `json:"from_language"`
	ToLanguage     string `json:"to_language"`
	Engine         string `json:"engine"`
	LatencyMS      *int64 `json:"latency_ms"`
}

// HistoryDocument is the whole persisted log. Records keep insertion order;
// presentation order (newest first) is applied on load, not here.
type HistoryDocument struct {
	Version   string          `json:"version"`
	CreatedAt int64           `json:"created_at"`
	UpdatedAt int64           `json:"updated_at"`
	Records   []HistoryRecord `json:"translations"`
}

// HistoryStats summarizes a history document. All fields are zero when no
// document exists yet.
type HistoryStats struct {
	Count     int    `json:"total_translations"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	Version   string `json:"version"`
}
