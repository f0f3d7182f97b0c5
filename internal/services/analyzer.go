package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"alfredoptarigan/github-talent-scout/internal/models"
)

var (
	ratingPattern = regexp.MustCompile(`Overall Rating:\s*(\d+)/5`)
	// The prompt asks for an "Overall Rating" section; the Rationale: label
	// is expected separately. See DESIGN.md for the known mismatch.
	rationalePattern = regexp.MustCompile(`(?s)Rationale:\s*(.+)`)
)

type CandidateAnalyzer interface {
	// Analyze produces the full Markdown assessment for a candidate. A model
	// failure is absorbed: the returned assessment carries an error-message
	// string as its Markdown and no rating.
	Analyze(
		ctx context.Context,
		snapshot *models.ProfileSnapshot,
		contributedRepos []string,
		fileSummaries []models.RepoFileSummaries,
		skills []string,
		resumeText string,
	) *models.CandidateAssessment
}

type candidateAnalyzer struct {
	gemini        GeminiService
	model         string
	promptBuilder *PromptBuilder
}

func NewCandidateAnalyzer(gemini GeminiService, model string) CandidateAnalyzer {
	return &candidateAnalyzer{
		gemini:        gemini,
		model:         model,
		promptBuilder: NewPromptBuilder(),
	}
}

func (a *candidateAnalyzer) Analyze(
	ctx context.Context,
	snapshot *models.ProfileSnapshot,
	contributedRepos []string,
	fileSummaries []models.RepoFileSummaries,
	skills []string,
	resumeText string,
) *models.CandidateAssessment {
	prompt := a.promptBuilder.BuildCandidatePrompt(snapshot, contributedRepos, fileSummaries, skills, resumeText)
	log.Printf("📝 Candidate assessment prompt length: %d characters", len(prompt))

	response, err := a.gemini.GenerateText(ctx, a.model, prompt, 0.4)
	if err != nil {
		log.Printf("❌ Candidate assessment failed: %v", err)
		return &models.CandidateAssessment{
			Markdown: fmt.Sprintf("Error generating candidate assessment: %v", err),
		}
	}

	assessment := &models.CandidateAssessment{Markdown: response}
	assessment.Rating, assessment.Rationale = ParseRating(response)
	if assessment.Rating == nil {
		log.Println("⚠️  No rating/rationale pair found in assessment text")
	}

	return assessment
}

// ParseRating extracts the numeric rating and its rationale from the
// assessment text. Both labels must match for either value to be returned:
// a reply with a rating but no rationale (or vice versa) yields neither.
// An unmatched reply is not an error.
func ParseRating(text string) (*int, string) {
	ratingMatch := ratingPattern.FindStringSubmatch(text)
	rationaleMatch := rationalePattern.FindStringSubmatch(text)
	if ratingMatch == nil || rationaleMatch == nil {
		return nil, ""
	}

	rating, err := strconv.Atoi(ratingMatch[1])
	if err != nil {
		return nil, ""
	}

	return &rating, strings.TrimSpace(rationaleMatch[1])
}
