package domain

// TranslateRequest is one translation call as issued by the GUI layer.
type TranslateRequest struct {
	Text     string `json:"text"`
	FromLang string `json:"from_lang"`
	ToLang   string `json:"to_lang"`
}

// TranslateResponse carries the model output, trimmed of surrounding whitespace.
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// DetectLanguageResponse holds an ISO 639-1 code. The heuristic detector only
// ever produces one of: ja, zh, ko, en.
type DetectLanguageResponse struct {
	Language string `json:"language"`
}
