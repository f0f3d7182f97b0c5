package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"alfredoptarigan/github-talent-scout/internal/models"
)

// maxSummariesPerRepo caps how many of a repository's largest files get an
// individual LLM summary.
const maxSummariesPerRepo = 5

type AnalysisPipeline interface {
	// Run executes the full candidate analysis for one GitHub identity.
	// A profile-fetch failure is fatal; every downstream enrichment failure
	// is absorbed so the primary assessment can still be produced.
	Run(ctx context.Context, identity models.GithubIdentity, skills []string, resumeText string) (*models.AnalysisResult, error)
}

type analysisPipeline struct {
	github       GithubService
	summarizer   FileSummarizer
	candidate    CandidateAnalyzer
	repoReviewer RepoAnalyzer
	topRepoCount int
}

func NewAnalysisPipeline(
	github GithubService,
	summarizer FileSummarizer,
	candidate CandidateAnalyzer,
	repoReviewer RepoAnalyzer,
	topRepoCount int,
) AnalysisPipeline {
	return &analysisPipeline{
		github:       github,
		summarizer:   summarizer,
		candidate:    candidate,
		repoReviewer: repoReviewer,
		topRepoCount: topRepoCount,
	}
}

func (p *analysisPipeline) Run(ctx context.Context, identity models.GithubIdentity, skills []string, resumeText string) (*models.AnalysisResult, error) {
	log.Printf("🔄 Starting analysis for %s", identity.Username)

	snapshot, err := p.github.FetchUserProfile(ctx, identity.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GitHub profile: %w", err)
	}

	contributed := p.github.FetchContributedRepositories(ctx, identity.Username)
	log.Printf("🔍 Found %d contributed repositories", len(contributed))

	fileSummaries := p.summarizeTopRepos(ctx, snapshot)

	log.Println("🤖 Generating candidate assessment...")
	assessment := p.candidate.Analyze(ctx, snapshot, contributed, fileSummaries, skills, resumeText)

	topRepoName, topRepoAnalysis := p.reviewTopStarredRepo(ctx, snapshot, skills)

	log.Printf("✅ Analysis completed for %s", identity.Username)

	return &models.AnalysisResult{
		Identity:         identity,
		Snapshot:         snapshot,
		ContributedRepos: contributed,
		FileSummaries:    fileSummaries,
		Assessment:       assessment,
		TopRepoName:      topRepoName,
		TopRepoAnalysis:  topRepoAnalysis,
	}, nil
}

// summarizeTopRepos fetches the most recently updated repositories and
// summarizes their largest files. Per-repo and per-file failures degrade
// locally and never abort the flow.
func (p *analysisPipeline) summarizeTopRepos(ctx context.Context, snapshot *models.ProfileSnapshot) []models.RepoFileSummaries {
	limit := len(snapshot.Repositories)
	if limit > p.topRepoCount {
		limit = p.topRepoCount
	}

	var results []models.RepoFileSummaries
	for _, repo := range snapshot.Repositories[:limit] {
		contents, err := p.github.FetchRepositoryContents(ctx, repo.HTMLURL)
		if err != nil {
			log.Printf("⚠️  Skipping file summaries for %s: %v", repo.Name, err)
			continue
		}

		files := make([]models.RepoFile, len(contents.Files))
		copy(files, contents.Files)
		sort.Slice(files, func(i, j int) bool {
			return files[i].Size > files[j].Size
		})
		if len(files) > maxSummariesPerRepo {
			files = files[:maxSummariesPerRepo]
		}

		var summaries []models.FileSummary
		for _, file := range files {
			summaries = append(summaries, models.FileSummary{
				Filename: file.Path,
				Summary:  p.summarizer.Summarize(ctx, file.Path, file.Content),
			})
		}

		if len(summaries) > 0 {
			results = append(results, models.RepoFileSummaries{
				RepoName:  repo.Name,
				Summaries: summaries,
			})
		}
	}

	return results
}

// reviewTopStarredRepo runs the detailed review against the candidate's
// most starred repository. Failures degrade to an inline error string.
func (p *analysisPipeline) reviewTopStarredRepo(ctx context.Context, snapshot *models.ProfileSnapshot, skills []string) (string, string) {
	var topRepo *models.RepoSummary
	for i := range snapshot.Repositories {
		if topRepo == nil || snapshot.Repositories[i].Stars > topRepo.Stars {
			topRepo = &snapshot.Repositories[i]
		}
	}
	if topRepo == nil {
		return "", ""
	}

	log.Printf("🤖 Reviewing top-starred repository %s...", topRepo.Name)

	contents, err := p.github.FetchRepositoryContents(ctx, topRepo.HTMLURL)
	if err != nil {
		log.Printf("⚠️  Failed to fetch %s for review: %v", topRepo.Name, err)
		return topRepo.Name, fmt.Sprintf("Error analyzing repository: %v", err)
	}

	return topRepo.Name, p.repoReviewer.Analyze(ctx, contents, skills)
}
