package app

import (
	"context"

	"github.com/kazukinakai/neural-translator/internal/domain"
	"github.com/kazukinakai/neural-translator/internal/usecase/translator"
)

// TranslateAPI is the translation command surface bound to the GUI layer.
type TranslateAPI struct{ svc *translator.Service }

func NewTranslateAPI(svc *translator.Service) *TranslateAPI { return &TranslateAPI{svc: svc} }

func (a *TranslateAPI) Translate(text, fromLang, toLang string) (domain.TranslateResponse, error) {
	return a.svc.Translate(context.Background(), domain.TranslateRequest{Text: text, FromLang: fromLang, ToLang: toLang})
}

func (a *TranslateAPI) TranslateWithPrompt(text, fromLang, toLang string) (domain.TranslateResponse, error) {
	return a.svc.TranslateWithPrompt(context.Background(), domain.TranslateRequest{Text: text, FromLang: fromLang, ToLang: toLang})
}

func (a *TranslateAPI) DetectLanguage(text string) (domain.DetectLanguageResponse, error) {
	return a.svc.Detect(text), nil
}

func (a *TranslateAPI) CheckHealth() (bool, error) {
	return a.svc.Health(context.Background())
}

func (a *TranslateAPI) ImproveText(text, language string) (domain.TranslateResponse, error) {
	return a.svc.Improve(context.Background(), text, language)
}

func (a *TranslateAPI) ListRecommendedModels() ([]string, error) {
	return a.svc.RecommendedModels(), nil
}
