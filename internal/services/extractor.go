package services

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

type ResumeExtractor interface {
	// ExtractText turns an uploaded document into a raw text blob. Extraction
	// problems are logged and degrade to an empty string, never an error:
	// the flow falls back to manual GitHub entry instead of aborting.
	ExtractText(filePath string) string
}

type resumeExtractor struct{}

func NewResumeExtractor() ResumeExtractor {
	return &resumeExtractor{}
}

func (r *resumeExtractor) ExtractText(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return r.extractPDF(filePath)
	case ".txt":
		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Printf("⚠️  Failed to read text resume %s: %v", filePath, err)
			return ""
		}
		return string(data)
	case ".docx":
		// Accepted by the upload filter but extraction is not implemented.
		log.Printf("⚠️  .docx extraction not implemented, %s yields empty text", filePath)
		return ""
	default:
		log.Printf("⚠️  Unsupported resume format: %s", filePath)
		return ""
	}
}

func (r *resumeExtractor) extractPDF(filePath string) string {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		log.Printf("⚠️  Failed to open PDF %s: %v", filePath, err)
		return ""
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			log.Printf("⚠️  Failed to extract page %d of %s: %v", pageIndex, filePath, err)
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String()
}

// CleanText removes blank lines and per-line padding from extracted text.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
