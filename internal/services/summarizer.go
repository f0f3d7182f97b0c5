package services

import (
	"context"
	"fmt"
	"log"
)

type FileSummarizer interface {
	// Summarize sends truncated file content to the summarization model and
	// returns its prose summary. Failures come back as an in-band error
	// string so a single bad file never aborts the larger pipeline.
	Summarize(ctx context.Context, filename, content string) string
}

type fileSummarizer struct {
	gemini   GeminiService
	model    string
	maxChars int
}

func NewFileSummarizer(gemini GeminiService, model string, maxChars int) FileSummarizer {
	return &fileSummarizer{
		gemini:   gemini,
		model:    model,
		maxChars: maxChars,
	}
}

func (f *fileSummarizer) Summarize(ctx context.Context, filename, content string) string {
	if len(content) > f.maxChars {
		content = content[:f.maxChars]
	}

	prompt := fmt.Sprintf(`Summarize this source file from a GitHub repository in a few sentences.

File: %s

%s

Cover the key functions and classes, the file's purpose, and the technologies it uses. Return plain prose only.`,
		filename, content)

	summary, err := f.gemini.GenerateText(ctx, f.model, prompt, 0.3)
	if err != nil {
		log.Printf("⚠️  Failed to summarize %s: %v", filename, err)
		return fmt.Sprintf("Error summarizing file: %v", err)
	}

	return summary
}
