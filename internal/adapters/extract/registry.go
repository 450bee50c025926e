// Package extract pulls plain text out of user-supplied files so it can be
// fed to translation. Format parsing itself is delegated to libraries; this
// package only dispatches by extension and normalizes the results.
package extract

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kazukinakai/neural-translator/internal/domain"
)

// Extractor pulls text from one file format.
type Extractor interface {
	Format() string
	Extract(path string) (string, error)
}

type Registry struct {
	byFormat map[string]Extractor
}

func NewRegistry() *Registry { return &Registry{byFormat: map[string]Extractor{}} }

func (r *Registry) Register(e Extractor) { r.byFormat[e.Format()] = e }

func (r *Registry) Get(format string) (Extractor, bool) { e, ok := r.byFormat[format]; return e, ok }

// Default returns a registry with all supported formats registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(&Plain{})
	r.Register(&DOCX{})
	r.Register(&PDF{})
	return r
}

// ReadFile extracts text from the file at path, dispatching on extension.
// Unknown extensions are tried as plain text.
func (r *Registry) ReadFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	ext := normalizeExt(path)
	e, ok := r.Get(ext)
	if !ok {
		e, _ = r.Get("txt")
	}
	return e.Extract(path)
}

// ValidateType reports the canonical type name for path, or
// ErrUnsupportedFormat.
func (r *Registry) ValidateType(path string) (string, error) {
	switch normalizeExt(path) {
	case "txt":
		return "text", nil
	case "docx":
		return "docx", nil
	case "pdf":
		return "pdf", nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

// ProcessContent extracts text from a base64 payload as received from the GUI
// layer. The payload is staged in a temporary file for the format libraries,
// which want paths.
func (r *Registry) ProcessContent(data, fileName string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decode file data: %w", err)
	}
	ext := normalizeExt(fileName)
	e, ok := r.Get(ext)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}

	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("neural_temp_%d.%s", time.Now().UnixMilli(), ext))
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return "", fmt.Errorf("write temporary file: %w", err)
	}
	defer func() { _ = os.Remove(tmp) }()

	return e.Extract(tmp)
}

func normalizeExt(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
