package app

import (
	"context"

	"github.com/kazukinakai/neural-translator/internal/adapters/db/sqlite"
	"github.com/kazukinakai/neural-translator/internal/ports"
)

// SettingsAPI persists GUI preferences.
type SettingsAPI struct{ repo ports.SettingsRepository }

func NewSettingsAPI(repo ports.SettingsRepository) *SettingsAPI { return &SettingsAPI{repo: repo} }

type LanguagePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (a *SettingsAPI) GetLanguagePair() (LanguagePair, error) {
	if a.repo == nil {
		return LanguagePair{}, nil
	}
	ctx := context.Background()
	from, err := a.repo.Get(ctx, sqlite.SettingDefaultFromLang)
	if err != nil {
		return LanguagePair{}, err
	}
	to, err := a.repo.Get(ctx, sqlite.SettingDefaultToLang)
	if err != nil {
		return LanguagePair{}, err
	}
	return LanguagePair{From: from, To: to}, nil
}

func (a *SettingsAPI) SetLanguagePair(from, to string) error {
	if a.repo == nil {
		return nil
	}
	return a.repo.SetMany(context.Background(), map[string]string{
		sqlite.SettingDefaultFromLang: from,
		sqlite.SettingDefaultToLang:   to,
	})
}
