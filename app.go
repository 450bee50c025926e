package main

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	appapi "github.com/kazukinakai/neural-translator/internal/api/app"
	"github.com/kazukinakai/neural-translator/internal/gesture"
)

// App holds the pieces that need the Wails runtime context, which only
// exists once startup runs.
type App struct {
	ctx       context.Context
	detector  *gesture.Detector
	clipboard *appapi.ClipboardAPI
}

func NewApp(detector *gesture.Detector, clipboard *appapi.ClipboardAPI) *App {
	return &App{detector: detector, clipboard: clipboard}
}

// startup is called when the app starts. The context is saved so runtime
// methods (events, clipboard) can be used.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.clipboard.SetContext(ctx)
	a.detector.SetEmitter(wailsEmitter{ctx: ctx})
}

// EmitShortcut relays a named shortcut event (language-swap, clear-text,
// copy-result) from the input-hook layer to the frontend.
func (a *App) EmitShortcut(name string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, name)
}

type wailsEmitter struct{ ctx context.Context }

func (w wailsEmitter) Emit(name string, payload any) {
	runtime.EventsEmit(w.ctx, name, payload)
}
