package services

import (
	"errors"
	"fmt"
)

// ErrInvalidRepoURL is returned before any HTTP request is issued when a
// repository URL lacks the github.com host or has too few path segments.
var ErrInvalidRepoURL = errors.New("invalid GitHub repository URL")

// GitHubAPIError carries a non-success GitHub response beyond the handled
// main→master branch fallback.
type GitHubAPIError struct {
	StatusCode int
	Body       string
}

func (e *GitHubAPIError) Error() string {
	return fmt.Sprintf("GitHub API error: %d, %s", e.StatusCode, e.Body)
}
