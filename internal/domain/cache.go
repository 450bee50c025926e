package domain

import "time"

// CacheEntry stores one translated segment so repeated requests skip the
// inference server entirely.
type CacheEntry struct {
	ID          int64     `json:"id"`
	SourceText  string    `json:"source_text"`
	FromLang    string    `json:"from_lang"`
	ToLang      string    `json:"to_lang"`
	Model       string    `json:"model"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
}
