package models

// FileSummary is the prose summary of one source file.
type FileSummary struct {
	Filename string
	Summary  string
}

// CandidateAssessment is the full Markdown assessment plus the rating pair
// extracted from it. Rating and Rationale are best-effort: when either label
// is missing from the model's reply, both are left absent. A nil Rating is
// not an error.
type CandidateAssessment struct {
	Markdown  string
	Rating    *int
	Rationale string
}

// RepoFileSummaries groups the file summaries of one repository.
type RepoFileSummaries struct {
	RepoName  string
	Summaries []FileSummary
}

// AnalysisResult is everything the result page renders.
type AnalysisResult struct {
	Identity         GithubIdentity
	Snapshot         *ProfileSnapshot
	ContributedRepos []string
	FileSummaries    []RepoFileSummaries
	Assessment       *CandidateAssessment
	TopRepoName      string
	TopRepoAnalysis  string
}
