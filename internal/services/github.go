package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/github-talent-scout/internal/models"
)

const defaultGithubAPIBase = "https://api.github.com"

// maxRepoContentBytes caps the cumulative size of files selected from one
// repository tree. Together with the file-count cap this is the only
// resource-protection guarantee the system makes, so it is enforced before
// any blob is fetched.
const maxRepoContentBytes = 500000

// codeExtensions is the allow-list of text-like files admitted from a
// repository tree. Anything else is silently dropped.
var codeExtensions = []string{
	".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".h", ".go", ".rb",
	".php", ".ts", ".jsx", ".tsx", ".md", ".json", ".yml", ".yaml", ".xml", ".txt",
}

type GithubService interface {
	FetchUserProfile(ctx context.Context, username string) (*models.ProfileSnapshot, error)
	FetchRepositoryContents(ctx context.Context, repoURL string) (*models.RepoContents, error)
	FetchContributedRepositories(ctx context.Context, username string) []string
}

type githubService struct {
	apiBase    string
	token      string
	maxFiles   int
	httpClient *http.Client
}

func NewGithubService(token string, maxFiles int) GithubService {
	return &githubService{
		apiBase:  defaultGithubAPIBase,
		token:    token,
		maxFiles: maxFiles,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get issues one GET against the GitHub API and returns the status code and
// raw body. The optional token raises the anonymous rate limit.
func (g *githubService) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.Header.Set("Authorization", "token "+g.token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, body, nil
}

type githubEvent struct {
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"repo"`
	CreatedAt string `json:"created_at"`
}

// FetchUserProfile implements GithubService. Profile and repository-list
// failures abort the call; a broken event feed degrades to an empty list.
func (g *githubService) FetchUserProfile(ctx context.Context, username string) (*models.ProfileSnapshot, error) {
	status, body, err := g.get(ctx, fmt.Sprintf("%s/users/%s", g.apiBase, username))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &GitHubAPIError{StatusCode: status, Body: string(body)}
	}

	var profile models.UserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}

	status, body, err = g.get(ctx, fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", g.apiBase, username))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &GitHubAPIError{StatusCode: status, Body: string(body)}
	}

	var repos []models.RepoSummary
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("failed to decode repository list: %w", err)
	}

	snapshot := &models.ProfileSnapshot{
		Profile:      profile,
		Repositories: repos,
	}

	status, body, err = g.get(ctx, fmt.Sprintf("%s/users/%s/events/public?per_page=30", g.apiBase, username))
	if err != nil || status != http.StatusOK {
		log.Printf("⚠️  Failed to fetch activity events for %s, continuing without them", username)
		return snapshot, nil
	}

	var rawEvents []githubEvent
	if err := json.Unmarshal(body, &rawEvents); err != nil {
		log.Printf("⚠️  Failed to decode activity events for %s: %v", username, err)
		return snapshot, nil
	}

	for _, ev := range rawEvents {
		snapshot.Events = append(snapshot.Events, models.Event{
			Type:      ev.Type,
			RepoName:  ev.Repo.Name,
			CreatedAt: ev.CreatedAt,
		})
	}

	return snapshot, nil
}

type githubTree struct {
	Tree []struct {
		Path string `json:"path"`
		Type string `json:"type"`
		Size int64  `json:"size"`
	} `json:"tree"`
}

type githubBlob struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// FetchRepositoryContents implements GithubService. The URL is validated
// before any HTTP round trip; the tree is listed at main with a single
// fallback to master on 404.
func (g *githubService) FetchRepositoryContents(ctx context.Context, repoURL string) (*models.RepoContents, error) {
	owner, repo, err := parseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	var (
		status int
		body   []byte
	)
	for _, branch := range []string{"main", "master"} {
		status, body, err = g.get(ctx, fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1", g.apiBase, owner, repo, branch))
		if err != nil {
			return nil, err
		}
		if status != http.StatusNotFound {
			break
		}
	}
	if status != http.StatusOK {
		return nil, &GitHubAPIError{StatusCode: status, Body: string(body)}
	}

	var tree githubTree
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode repository tree: %w", err)
	}

	type treeEntry struct {
		path string
		size int64
	}

	var selected []treeEntry
	var totalSize int64
	for _, item := range tree.Tree {
		if item.Type != "blob" {
			continue
		}
		if !hasCodeExtension(item.Path) {
			continue
		}
		if totalSize+item.Size > maxRepoContentBytes {
			continue
		}
		selected = append(selected, treeEntry{path: item.Path, size: item.Size})
		totalSize += item.Size
	}

	if len(selected) > g.maxFiles {
		selected = selected[:g.maxFiles]
	}

	contents := &models.RepoContents{}

	for _, entry := range selected {
		status, body, err := g.get(ctx, fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.apiBase, owner, repo, entry.path))
		if err != nil || status != http.StatusOK {
			continue
		}

		var blob githubBlob
		if err := json.Unmarshal(body, &blob); err != nil || blob.Content == "" {
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(stripWhitespace(blob.Content))
		if err != nil {
			continue
		}
		if !utf8.Valid(decoded) {
			// Not text, skip rather than fail.
			continue
		}

		contents.Files = append(contents.Files, models.RepoFile{
			Path:    entry.path,
			Size:    entry.size,
			Content: string(decoded),
		})
	}

	status, body, err = g.get(ctx, fmt.Sprintf("%s/repos/%s/%s", g.apiBase, owner, repo))
	if err == nil && status == http.StatusOK {
		var info struct {
			Name        string `json:"name"`
			FullName    string `json:"full_name"`
			Description string `json:"description"`
			Language    string `json:"language"`
			Stars       int    `json:"stargazers_count"`
			HTMLURL     string `json:"html_url"`
			Owner       struct {
				Login string `json:"login"`
			} `json:"owner"`
		}
		if err := json.Unmarshal(body, &info); err == nil {
			contents.Info = models.RepoInfo{
				Name:        info.Name,
				FullName:    info.FullName,
				Description: info.Description,
				Language:    info.Language,
				Stars:       info.Stars,
				HTMLURL:     info.HTMLURL,
				OwnerLogin:  info.Owner.Login,
			}
		}
	}

	return contents, nil
}

// FetchContributedRepositories implements GithubService. It never fails the
// caller: any request or decode error yields an empty result.
func (g *githubService) FetchContributedRepositories(ctx context.Context, username string) []string {
	status, body, err := g.get(ctx, fmt.Sprintf("%s/users/%s/events/public?per_page=100", g.apiBase, username))
	if err != nil || status != http.StatusOK {
		log.Printf("⚠️  Failed to fetch contribution events for %s", username)
		return nil
	}

	var events []githubEvent
	if err := json.Unmarshal(body, &events); err != nil {
		log.Printf("⚠️  Failed to decode contribution events for %s: %v", username, err)
		return nil
	}

	seen := make(map[string]bool)
	var urls []string
	for _, ev := range events {
		if ev.Type != "PushEvent" && ev.Type != "PullRequestEvent" {
			continue
		}
		htmlURL := strings.Replace(ev.Repo.URL, "api.github.com/repos/", "github.com/", 1)
		if htmlURL == "" || seen[htmlURL] {
			continue
		}
		seen[htmlURL] = true
		urls = append(urls, htmlURL)
	}

	return urls
}

// parseRepoURL extracts owner and repo from a browsable repository URL of
// the form https://github.com/<owner>/<repo>.
func parseRepoURL(repoURL string) (string, string, error) {
	parts := strings.Split(strings.TrimRight(repoURL, "/"), "/")
	if !strings.Contains(repoURL, "github.com") || len(parts) < 5 {
		return "", "", ErrInvalidRepoURL
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

func hasCodeExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range codeExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
}
