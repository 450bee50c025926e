package main

import (
	"embed"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"

	dbsqlite "github.com/kazukinakai/neural-translator/internal/adapters/db/sqlite"
	"github.com/kazukinakai/neural-translator/internal/adapters/extract"
	historyjson "github.com/kazukinakai/neural-translator/internal/adapters/history/jsonfile"
	"github.com/kazukinakai/neural-translator/internal/adapters/llm/ollama"
	apiapp "github.com/kazukinakai/neural-translator/internal/api/app"
	"github.com/kazukinakai/neural-translator/internal/config"
	"github.com/kazukinakai/neural-translator/internal/gesture"
	"github.com/kazukinakai/neural-translator/internal/ports"
	translatorusecase "github.com/kazukinakai/neural-translator/internal/usecase/translator"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg := config.New()

	logger, _ := zap.NewProduction()
	if cfg.DebugMode {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	provider := ollama.New(cfg.OllamaBaseURL, cfg.Models, cfg.OllamaTimeout, log)

	// Database and repositories. The cache is optional: a broken local DB
	// should not keep translation from working.
	deps := translatorusecase.Deps{Provider: provider, Log: log}
	var settingsRepo ports.SettingsRepository
	db, dberr := dbsqlite.Init(cfg.DBPath)
	if dberr != nil {
		log.Warnw("cache database unavailable, continuing without cache", "error", dberr)
	} else {
		deps.Cache = dbsqlite.NewCacheRepo(db)
		settingsRepo = dbsqlite.NewSettingsRepo(db)
	}

	transSvc := translatorusecase.New(deps)

	historyStore := historyjson.New(cfg.HistoryDir, log)
	detector := gesture.New(cfg.MinTapInterval, cfg.DoubleTapTimeout, log)
	extractors := extract.Default()

	// API bindings
	translateAPI := apiapp.NewTranslateAPI(transSvc)
	historyAPI := apiapp.NewHistoryAPI(historyStore)
	filesAPI := apiapp.NewFilesAPI(extractors)
	settingsAPI := apiapp.NewSettingsAPI(settingsRepo)
	clipboardAPI := apiapp.NewClipboardAPI()
	gestureAPI := apiapp.NewGestureAPI(detector)

	app := NewApp(detector, clipboardAPI)

	err := wails.Run(&options.App{
		Title:  "NeuraL Translator",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		Bind: []interface{}{
			app,
			translateAPI,
			historyAPI,
			filesAPI,
			settingsAPI,
			clipboardAPI,
			gestureAPI,
		},
	})

	if err != nil {
		log.Errorw("application exited with error", "error", err)
	}
}
