package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/github-talent-scout/internal/models"
)

type RepoAnalyzer interface {
	// Analyze reviews a single repository's code quality. Failures come back
	// as an in-band error string, never an error return.
	Analyze(ctx context.Context, contents *models.RepoContents, skills []string) string
}

type repoAnalyzer struct {
	gemini        GeminiService
	model         string
	maxChars      int
	promptBuilder *PromptBuilder
}

func NewRepoAnalyzer(gemini GeminiService, model string, maxChars int) RepoAnalyzer {
	return &repoAnalyzer{
		gemini:        gemini,
		model:         model,
		maxChars:      maxChars,
		promptBuilder: NewPromptBuilder(),
	}
}

func (r *repoAnalyzer) Analyze(ctx context.Context, contents *models.RepoContents, skills []string) string {
	prompt := r.promptBuilder.BuildRepoReviewPrompt(contents, skills, r.maxChars)
	log.Printf("📝 Repository review prompt length: %d characters", len(prompt))

	response, err := r.gemini.GenerateText(ctx, r.model, prompt, 0.4)
	if err != nil {
		log.Printf("❌ Repository review failed: %v", err)
		return fmt.Sprintf("Error analyzing repository: %v", err)
	}

	return response
}
