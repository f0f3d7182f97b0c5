package models

// UserProfile is the subset of GitHub user attributes the prompts care about.
type UserProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	HTMLURL     string `json:"html_url"`
	CreatedAt   string `json:"created_at"`
}

// RepoSummary is the public metadata subset of a repository.
type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	HTMLURL     string `json:"html_url"`
}

// Event is a single entry from a user's public activity feed.
type Event struct {
	Type      string `json:"type"`
	RepoName  string `json:"repo_name"`
	CreatedAt string `json:"created_at"`
}

// ProfileSnapshot bundles everything fetched for one user in one pass.
// Snapshots are fetched fresh per analysis and never cached across requests.
type ProfileSnapshot struct {
	Profile      UserProfile
	Repositories []RepoSummary
	Events       []Event
}

// RepoInfo is the metadata header of a fetched repository.
type RepoInfo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	HTMLURL     string `json:"html_url"`
	OwnerLogin  string `json:"owner_login"`
}

// RepoFile is one decoded text file from a repository tree. Files keep the
// order the tree listing returned them in.
type RepoFile struct {
	Path    string
	Size    int64
	Content string
}

// RepoContents is a capped selection of a repository's text files.
type RepoContents struct {
	Info  RepoInfo
	Files []RepoFile
}
