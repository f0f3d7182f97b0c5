package models

// ResumeDocument is the derived record produced from an uploaded resume.
// It is request-scoped and never persisted.
type ResumeDocument struct {
	FilePath  string   `json:"file_path"`
	RawText   string   `json:"raw_text"`
	Skills    []string `json:"skills"`
	GithubURL string   `json:"github_url,omitempty"`
}

// GithubIdentity is the GitHub account the analysis runs against. A
// user-supplied override always wins over a resume-derived URL.
type GithubIdentity struct {
	Username   string `json:"username"`
	ProfileURL string `json:"profile_url"`
}
