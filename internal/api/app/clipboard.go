package app

import (
	"context"
	"errors"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// ClipboardAPI wraps the Wails clipboard runtime. The runtime context only
// exists after startup, so main wires it via SetContext.
type ClipboardAPI struct{ ctx context.Context }

func NewClipboardAPI() *ClipboardAPI { return &ClipboardAPI{} }

func (a *ClipboardAPI) SetContext(ctx context.Context) { a.ctx = ctx }

func (a *ClipboardAPI) Read() (string, error) {
	if a.ctx == nil {
		return "", errors.New("clipboard not available before startup")
	}
	return runtime.ClipboardGetText(a.ctx)
}

func (a *ClipboardAPI) Write(text string) error {
	if a.ctx == nil {
		return errors.New("clipboard not available before startup")
	}
	return runtime.ClipboardSetText(a.ctx, text)
}
