package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"alfredoptarigan/github-talent-scout/internal/models"
)

// fakeGemini satisfies GeminiService and records the last prompt it saw.
type fakeGemini struct {
	response   string
	err        error
	lastModel  string
	lastPrompt string
}

func (f *fakeGemini) GenerateText(_ context.Context, model string, prompt string, _ float32) (string, error) {
	f.lastModel = model
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestParseRating(t *testing.T) {
	testCases := []struct {
		name          string
		text          string
		wantRating    int
		wantMatch     bool
		wantRationale string
	}{
		{
			name:          "both labels present",
			text:          "### 5. Overall Rating\nOverall Rating: 4/5\nRationale: Strong fundamentals with limited breadth.",
			wantRating:    4,
			wantMatch:     true,
			wantRationale: "Strong fundamentals with limited breadth.",
		},
		{
			name:      "rating without rationale label",
			text:      "Overall Rating: 4/5\nThe candidate shows solid work.",
			wantMatch: false,
		},
		{
			name:      "rationale without rating",
			text:      "Rationale: Great depth in systems programming.",
			wantMatch: false,
		},
		{
			name:      "neither label",
			text:      "A thorough assessment with no structured footer.",
			wantMatch: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rating, rationale := ParseRating(tc.text)
			if tc.wantMatch {
				if rating == nil {
					t.Fatalf("ParseRating(%q) rating = nil, want %d", tc.text, tc.wantRating)
				}
				if *rating != tc.wantRating {
					t.Errorf("rating = %d, want %d", *rating, tc.wantRating)
				}
				if rationale != tc.wantRationale {
					t.Errorf("rationale = %q, want %q", rationale, tc.wantRationale)
				}
				return
			}
			if rating != nil || rationale != "" {
				t.Errorf("ParseRating(%q) = (%v, %q), want absent pair", tc.text, rating, rationale)
			}
		})
	}
}

func TestCandidateAnalyzerFailureIsAbsorbed(t *testing.T) {
	gemini := &fakeGemini{err: errors.New("quota exhausted")}
	analyzer := NewCandidateAnalyzer(gemini, "test-model")

	assessment := analyzer.Analyze(context.Background(), &models.ProfileSnapshot{}, nil, nil, nil, "")

	if !strings.Contains(assessment.Markdown, "Error generating candidate assessment") {
		t.Errorf("Markdown = %q, want inline error message", assessment.Markdown)
	}
	if assessment.Rating != nil {
		t.Errorf("Rating = %v, want nil on failure", assessment.Rating)
	}
}

func TestCandidateAnalyzerPromptAssembly(t *testing.T) {
	gemini := &fakeGemini{response: "## Candidate Assessment\nfine"}
	analyzer := NewCandidateAnalyzer(gemini, "test-model")

	snapshot := &models.ProfileSnapshot{
		Profile: models.UserProfile{Login: "octocat", Followers: 12},
		Repositories: []models.RepoSummary{
			{Name: "demo", Language: "Go", Stars: 5},
		},
		Events: []models.Event{
			{Type: "PushEvent"}, {Type: "PushEvent"}, {Type: "ForkEvent"},
		},
	}
	summaries := []models.RepoFileSummaries{
		{
			RepoName: "demo",
			Summaries: []models.FileSummary{
				{Filename: "main.go", Summary: "Entry point."},
				{Filename: "broken.go", Summary: "Error summarizing file: timeout"},
			},
		},
	}
	contributed := []string{"https://github.com/upstream/lib"}

	analyzer.Analyze(context.Background(), snapshot, contributed, summaries, []string{"Go", "Python"}, "resume body")

	prompt := gemini.lastPrompt
	for _, want := range []string{
		"Login: octocat",
		"demo (Go, 5 stars",
		"https://github.com/upstream/lib",
		"PushEvent: 2",
		"Error summarizing file: timeout",
		"Go, Python",
		"resume body",
		"Overall Rating:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFileSummarizerTruncation(t *testing.T) {
	gemini := &fakeGemini{response: "a summary"}
	summarizer := NewFileSummarizer(gemini, "test-model", 50)

	content := strings.Repeat("x", 50) + "OVERFLOW"
	got := summarizer.Summarize(context.Background(), "big.go", content)

	if got != "a summary" {
		t.Errorf("Summarize = %q, want %q", got, "a summary")
	}
	if strings.Contains(gemini.lastPrompt, "OVERFLOW") {
		t.Error("prompt contains content beyond the truncation budget")
	}
	if !strings.Contains(gemini.lastPrompt, "big.go") {
		t.Error("prompt missing filename")
	}
}

func TestFileSummarizerFailureIsInBand(t *testing.T) {
	gemini := &fakeGemini{err: errors.New("backend down")}
	summarizer := NewFileSummarizer(gemini, "test-model", 2000)

	got := summarizer.Summarize(context.Background(), "main.go", "package main")
	if !strings.HasPrefix(got, "Error summarizing file:") {
		t.Errorf("Summarize = %q, want in-band error string", got)
	}
}

func TestRepoAnalyzerFailureIsInBand(t *testing.T) {
	gemini := &fakeGemini{err: errors.New("backend down")}
	reviewer := NewRepoAnalyzer(gemini, "test-model", 5000)

	got := reviewer.Analyze(context.Background(), &models.RepoContents{}, nil)
	if !strings.HasPrefix(got, "Error analyzing repository:") {
		t.Errorf("Analyze = %q, want in-band error string", got)
	}
}

func TestRepoReviewPromptTruncation(t *testing.T) {
	pb := NewPromptBuilder()

	contents := &models.RepoContents{
		Info: models.RepoInfo{Name: "demo", Description: "sample"},
		Files: []models.RepoFile{
			{Path: "big.py", Content: strings.Repeat("y", 120) + "OVERFLOW"},
		},
	}

	prompt := pb.BuildRepoReviewPrompt(contents, []string{"Python"}, 120)

	if strings.Contains(prompt, "OVERFLOW") {
		t.Error("prompt contains content beyond the truncation budget")
	}
	if !strings.Contains(prompt, "### File: big.py") {
		t.Error("prompt missing file header")
	}
	if !strings.Contains(prompt, "Python") {
		t.Error("prompt missing resume skills")
	}
}
