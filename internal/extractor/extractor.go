package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("only PDF and Word (.docx) files are supported")
	ErrExtraction        = errors.New("failed to extract document content")
	ErrEmptyContent      = errors.New("document content is empty, no usable text extracted")
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// SupportedContentType reports whether the declared MIME type is one of the
// two accepted upload formats.
func SupportedContentType(contentType string) bool {
	return contentType == ContentTypePDF || contentType == ContentTypeDOCX
}

// Extract converts document bytes to plain text based on the declared file
// extension. The result is the concatenated page (PDF) or paragraph (DOCX)
// text; a trimmed-empty result is an error.
func Extract(data []byte, ext string) (string, error) {
	var text string
	var err error

	switch strings.ToLower(ext) {
	case "pdf":
		text, err = extractPDF(data)
	case "docx":
		text, err = extractDOCX(data)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if paragraph, ok := item.(*docx.Paragraph); ok {
			sb.WriteString(paragraph.String())
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
