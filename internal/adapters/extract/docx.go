package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCX extracts paragraph text from Word documents.
type DOCX struct{}

func (*DOCX) Format() string { return "docx" }

func (*DOCX) Extract(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read DOCX file: %w", err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat DOCX file: %w", err)
	}
	doc, err := docx.Parse(f, st.Size())
	if err != nil {
		return "", fmt.Errorf("parse DOCX file: %w", err)
	}

	var sb strings.Builder
	for _, it := range doc.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			sb.WriteString(p.String())
			sb.WriteByte('\n')
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
