package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resumatch-utils/pkg/utils"
)

// UnsupportedFormatError is returned when a file extension is not one of the
// supported document formats
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (expected .pdf, .docx, .md or .txt)", e.Ext)
}

// Markdown formatting stripped before the text reaches the parser
var (
	mdHeaderPattern     = regexp.MustCompile(`(?m)^#+\s+`)
	mdEmphasisPattern   = regexp.MustCompile(`\*\*|\*|__|_`)
	mdLinkPattern       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdCodeBlockPattern  = regexp.MustCompile("```[\\s\\S]*?```")
	mdInlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// ExtractText reads the file at path and returns its plain text content,
// dispatching on the file extension
func ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ExtractTextFromBytes(filepath.Ext(path), data)
}

// ExtractTextFromBytes converts raw document bytes to plain text. The ext
// argument declares the format (with or without the leading dot).
func ExtractTextFromBytes(ext string, data []byte) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	switch ext {
	case "pdf":
		return extractPDFText(data)
	case "docx":
		return extractDocxText(data)
	case "md", "markdown":
		return stripMarkdown(string(data)), nil
	case "txt", "text":
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

// extractPDFText concatenates the plain text of every PDF page
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", utils.NewExtractionError(fmt.Sprintf("failed to read pdf: %v", err))
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		builder.WriteString(text)
		builder.WriteString("\n\n")
	}
	return builder.String(), nil
}

// extractDocxText returns the document body text of a DOCX file
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", utils.NewExtractionError(fmt.Sprintf("failed to parse docx: %v", err))
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// stripMarkdown removes basic markdown formatting while keeping the text
func stripMarkdown(text string) string {
	text = mdHeaderPattern.ReplaceAllString(text, "")
	text = mdCodeBlockPattern.ReplaceAllString(text, "")
	text = mdInlineCodePattern.ReplaceAllString(text, "$1")
	text = mdLinkPattern.ReplaceAllString(text, "$1")
	text = mdEmphasisPattern.ReplaceAllString(text, "")
	return text
}
