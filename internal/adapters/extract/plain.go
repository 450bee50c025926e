package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Plain reads text files, trying UTF-8, then Shift_JIS (common for Japanese
// text files), then Windows-1252 as the last resort.
type Plain struct{}

func (*Plain) Format() string { return "txt" }

func (*Plain) Extract(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	if s, err := japanese.ShiftJIS.NewDecoder().Bytes(b); err == nil && !strings.ContainsRune(string(s), utf8.RuneError) {
		return string(s), nil
	}
	// Windows-1252 maps every byte, so this cannot fail.
	s, _ := charmap.Windows1252.NewDecoder().Bytes(b)
	return string(s), nil
}
