package translator

import (
	"context"

	"go.uber.org/zap"

	"github.com/kazukinakai/neural-translator/internal/adapters/prompt"
	"github.com/kazukinakai/neural-translator/internal/detect"
	"github.com/kazukinakai/neural-translator/internal/domain"
	"github.com/kazukinakai/neural-translator/internal/ports"
)

type Deps struct {
	Provider ports.Provider
	// Cache may be nil; translation then always hits the inference server.
	Cache ports.CacheRepository
	Log   *zap.SugaredLogger
}

// Service coordinates detection, caching and prompt selection around the
// provider's fallback chain. Safe for concurrent use: the only shared mutable
// state lives in the provider's pooled HTTP transport and the cache's DB.
type Service struct{ d Deps }

func New(d Deps) *Service { return &Service{d: d} }

// Translate renders the minimal translation prompt and runs the fallback
// chain. An empty or "auto" source language is pre-filled by the heuristic
// detector. Identical requests are served from the cache.
func (s *Service) Translate(ctx context.Context, req domain.TranslateRequest) (domain.TranslateResponse, error) {
	from := req.FromLang
	if from == "" || from == "auto" {
		from = detect.Language(req.Text).Language
		s.d.Log.Debugw("source language detected", "language", from)
	}

	if s.d.Cache != nil {
		if ce, _ := s.d.Cache.Get(ctx, req.Text, from, req.ToLang); ce != nil {
			s.d.Log.Debugw("cache hit", "from", from, "to", req.ToLang)
			return domain.TranslateResponse{TranslatedText: ce.Translation}, nil
		}
	}

	res, err := s.d.Provider.Generate(ctx, prompt.Translate(from, req.ToLang, req.Text))
	if err != nil {
		return domain.TranslateResponse{}, err
	}
	if s.d.Cache != nil {
		_ = s.d.Cache.Put(ctx, &domain.CacheEntry{
			SourceText:  req.Text,
			FromLang:    from,
			ToLang:      req.ToLang,
			Model:       res.Model,
			Translation: res.Text,
		})
	}
	return domain.TranslateResponse{TranslatedText: res.Text}, nil
}

// TranslateWithPrompt uses the fully-formed instruction prompt instead of the
// minimal template. Bypasses the cache: instruction-grade output should not
// be mixed with minimal-prompt output for the same text.
func (s *Service) TranslateWithPrompt(ctx context.Context, req domain.TranslateRequest) (domain.TranslateResponse, error) {
	res, err := s.d.Provider.Generate(ctx, prompt.Instruction(req.FromLang, req.ToLang, req.Text))
	if err != nil {
		return domain.TranslateResponse{}, err
	}
	return domain.TranslateResponse{TranslatedText: res.Text}, nil
}

// Improve asks the model to polish text in its own language.
func (s *Service) Improve(ctx context.Context, text, language string) (domain.TranslateResponse, error) {
	res, err := s.d.Provider.Generate(ctx, prompt.Improve(language, text))
	if err != nil {
		return domain.TranslateResponse{}, err
	}
	return domain.TranslateResponse{TranslatedText: res.Text}, nil
}

// Detect runs the character-range heuristic. Never fails.
func (s *Service) Detect(text string) domain.DetectLanguageResponse {
	return detect.Language(text)
}

// Health reports whether the inference server is reachable with at least one
// candidate model installed.
func (s *Service) Health(ctx context.Context) (bool, error) {
	return s.d.Provider.CheckHealth(ctx)
}

// RecommendedModels returns the candidate chain in preference order.
func (s *Service) RecommendedModels() []string {
	return s.d.Provider.Candidates()
}
