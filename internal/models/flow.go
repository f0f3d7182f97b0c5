package models

// FlowState is the per-flow context carried across the upload → confirm →
// analyze steps. It lives in the hosting session keyed by session id; a new
// upload simply overwrites it. There is no process-wide mutable state.
type FlowState struct {
	ResumePath string   `json:"resume_path,omitempty"`
	ResumeText string   `json:"resume_text,omitempty"`
	GithubURL  string   `json:"github_url,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}
