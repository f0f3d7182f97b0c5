package services

import (
	"context"
	"errors"
	"testing"

	"alfredoptarigan/github-talent-scout/internal/models"
)

type fakeGithub struct {
	snapshot    *models.ProfileSnapshot
	profileErr  error
	contents    map[string]*models.RepoContents
	contentsErr error

	profileCalls     int
	contributedCalls int
	contentsCalls    []string
}

func (f *fakeGithub) FetchUserProfile(_ context.Context, _ string) (*models.ProfileSnapshot, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.snapshot, nil
}

func (f *fakeGithub) FetchRepositoryContents(_ context.Context, repoURL string) (*models.RepoContents, error) {
	f.contentsCalls = append(f.contentsCalls, repoURL)
	if f.contentsErr != nil {
		return nil, f.contentsErr
	}
	if c, ok := f.contents[repoURL]; ok {
		return c, nil
	}
	return &models.RepoContents{}, nil
}

func (f *fakeGithub) FetchContributedRepositories(_ context.Context, _ string) []string {
	f.contributedCalls++
	return []string{"https://github.com/upstream/lib"}
}

type fakeSummarizer struct {
	summaries map[string]string
}

func (f *fakeSummarizer) Summarize(_ context.Context, filename, _ string) string {
	if s, ok := f.summaries[filename]; ok {
		return s
	}
	return "a summary of " + filename
}

type fakeCandidateAnalyzer struct {
	called        bool
	gotSummaries  []models.RepoFileSummaries
	gotSkills     []string
	gotResumeText string
}

func (f *fakeCandidateAnalyzer) Analyze(
	_ context.Context,
	_ *models.ProfileSnapshot,
	_ []string,
	fileSummaries []models.RepoFileSummaries,
	skills []string,
	resumeText string,
) *models.CandidateAssessment {
	f.called = true
	f.gotSummaries = fileSummaries
	f.gotSkills = skills
	f.gotResumeText = resumeText
	return &models.CandidateAssessment{Markdown: "ok"}
}

type fakeRepoAnalyzer struct {
	called bool
}

func (f *fakeRepoAnalyzer) Analyze(_ context.Context, _ *models.RepoContents, _ []string) string {
	f.called = true
	return "repo review"
}

func TestPipelineProfileFailureIsFatal(t *testing.T) {
	github := &fakeGithub{profileErr: errors.New("boom")}
	candidate := &fakeCandidateAnalyzer{}
	pipeline := NewAnalysisPipeline(github, &fakeSummarizer{}, candidate, &fakeRepoAnalyzer{}, 3)

	_, err := pipeline.Run(context.Background(), models.GithubIdentity{Username: "octocat"}, nil, "")
	if err == nil {
		t.Fatal("Run returned nil error, want failure")
	}

	if github.contributedCalls != 0 {
		t.Error("contribution scan ran after fatal profile failure")
	}
	if len(github.contentsCalls) != 0 {
		t.Error("repository fetch ran after fatal profile failure")
	}
	if candidate.called {
		t.Error("candidate analyzer ran after fatal profile failure")
	}
}

func TestPipelineAbsorbsSummarizationFailures(t *testing.T) {
	snapshot := &models.ProfileSnapshot{
		Profile: models.UserProfile{Login: "octocat"},
		Repositories: []models.RepoSummary{
			{Name: "demo", Stars: 1, HTMLURL: "https://github.com/octocat/demo"},
		},
	}
	github := &fakeGithub{
		snapshot: snapshot,
		contents: map[string]*models.RepoContents{
			"https://github.com/octocat/demo": {
				Files: []models.RepoFile{
					{Path: "main.go", Size: 10, Content: "package main"},
					{Path: "util.go", Size: 5, Content: "package main"},
				},
			},
		},
	}
	summarizer := &fakeSummarizer{summaries: map[string]string{
		"main.go": "Error summarizing file: timeout",
	}}
	candidate := &fakeCandidateAnalyzer{}
	pipeline := NewAnalysisPipeline(github, summarizer, candidate, &fakeRepoAnalyzer{}, 3)

	result, err := pipeline.Run(context.Background(), models.GithubIdentity{Username: "octocat"}, []string{"Go"}, "resume")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !candidate.called {
		t.Fatal("candidate analyzer never ran")
	}

	// The failed summary rides along as an in-band string; the assessment
	// still assembles.
	var foundErrorSummary bool
	for _, repo := range candidate.gotSummaries {
		for _, fs := range repo.Summaries {
			if fs.Filename == "main.go" && fs.Summary == "Error summarizing file: timeout" {
				foundErrorSummary = true
			}
		}
	}
	if !foundErrorSummary {
		t.Errorf("summaries = %+v, want in-band error for main.go", candidate.gotSummaries)
	}

	if result.Assessment == nil || result.Assessment.Markdown != "ok" {
		t.Errorf("assessment = %+v, want completed assessment", result.Assessment)
	}
}

func TestPipelineReviewsTopStarredRepo(t *testing.T) {
	snapshot := &models.ProfileSnapshot{
		Profile: models.UserProfile{Login: "octocat"},
		Repositories: []models.RepoSummary{
			{Name: "small", Stars: 1, HTMLURL: "https://github.com/octocat/small"},
			{Name: "popular", Stars: 50, HTMLURL: "https://github.com/octocat/popular"},
			{Name: "medium", Stars: 8, HTMLURL: "https://github.com/octocat/medium"},
		},
	}
	github := &fakeGithub{snapshot: snapshot}
	reviewer := &fakeRepoAnalyzer{}
	pipeline := NewAnalysisPipeline(github, &fakeSummarizer{}, &fakeCandidateAnalyzer{}, reviewer, 0)

	result, err := pipeline.Run(context.Background(), models.GithubIdentity{Username: "octocat"}, nil, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.TopRepoName != "popular" {
		t.Errorf("TopRepoName = %q, want %q", result.TopRepoName, "popular")
	}
	if !reviewer.called {
		t.Error("repository reviewer never ran")
	}
	if result.TopRepoAnalysis != "repo review" {
		t.Errorf("TopRepoAnalysis = %q, want fake review", result.TopRepoAnalysis)
	}
}

func TestPipelineTopRepoFetchFailureDegrades(t *testing.T) {
	snapshot := &models.ProfileSnapshot{
		Profile: models.UserProfile{Login: "octocat"},
		Repositories: []models.RepoSummary{
			{Name: "demo", Stars: 3, HTMLURL: "https://github.com/octocat/demo"},
		},
	}
	github := &fakeGithub{
		snapshot:    snapshot,
		contentsErr: &GitHubAPIError{StatusCode: 502, Body: "bad gateway"},
	}
	pipeline := NewAnalysisPipeline(github, &fakeSummarizer{}, &fakeCandidateAnalyzer{}, &fakeRepoAnalyzer{}, 3)

	result, err := pipeline.Run(context.Background(), models.GithubIdentity{Username: "octocat"}, nil, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.TopRepoName != "demo" {
		t.Errorf("TopRepoName = %q, want %q", result.TopRepoName, "demo")
	}
	if result.TopRepoAnalysis == "" {
		t.Error("TopRepoAnalysis empty, want inline error string")
	}
}
