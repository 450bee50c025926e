package extract

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/japanese"

	"github.com/kazukinakai/neural-translator/internal/domain"
)

func TestReadFilePlainUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello 翻訳"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Default().ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "hello 翻訳" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestReadFileShiftJISFallback(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("こんにちは世界"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "sjis.txt")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Default().ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "こんにちは世界" {
		t.Fatalf("shift_jis fallback failed, got %q", got)
	}
}

func TestReadFileUnknownExtensionTriedAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.log")
	if err := os.WriteFile(path, []byte("plain enough"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Default().ReadFile(path)
	if err != nil || got != "plain enough" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := Default().ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateType(t *testing.T) {
	r := Default()
	cases := map[string]string{"a.txt": "text", "b.DOCX": "docx", "c.pdf": "pdf"}
	for path, want := range cases {
		got, err := r.ValidateType(path)
		if err != nil || got != want {
			t.Fatalf("ValidateType(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	if _, err := r.ValidateType("d.exe"); !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestProcessContent(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte("from the clipboard"))
	got, err := Default().ProcessContent(data, "pasted.txt")
	if err != nil || got != "from the clipboard" {
		t.Fatalf("got %q, %v", got, err)
	}

	if _, err := Default().ProcessContent(data, "pasted.exe"); !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}

	if _, err := Default().ProcessContent("%%%not-base64%%%", "x.txt"); err == nil {
		t.Fatal("expected decode error")
	}
}
