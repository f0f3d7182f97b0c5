package services

import (
	"regexp"
	"strings"

	"alfredoptarigan/github-talent-scout/internal/models"
)

// githubURLPatterns are tried in order against the raw resume text; the
// first match wins. Each pattern captures the username.
var githubURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`github\.com/([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)github:\s*([A-Za-z0-9-]+)\b`),
	regexp.MustCompile(`(?i)github:\s*https?://github\.com/([A-Za-z0-9-]+)`),
	regexp.MustCompile(`(?i)github profile:\s*(?:https?://)?(?:www\.)?github\.com/([A-Za-z0-9-]+)`),
}

var skillsHeadingPattern = regexp.MustCompile(`(?i)(technical skills|programming languages|technologies|skills)\s*:?`)

// headingLinePattern flags a capitalized section heading such as
// "Experience" or "Work History", ending the skills section.
var headingLinePattern = regexp.MustCompile(`^[A-Z][A-Za-z ]{2,30}:?$`)

var skillTokenPattern = regexp.MustCompile(`[A-Za-z0-9#+.]+`)

// shortSkillAllowList keeps well-known languages that the minimum token
// length would otherwise discard.
var shortSkillAllowList = map[string]bool{
	"go": true,
	"c#": true,
	"c":  true,
	"r":  true,
}

type ProfileExtractor interface {
	ExtractGithubURL(text string) (string, bool)
	ExtractSkills(text string) []string
}

type profileExtractor struct{}

func NewProfileExtractor() ProfileExtractor {
	return &profileExtractor{}
}

// ExtractGithubURL scans the resume text for a GitHub profile reference and
// returns its normalized https://github.com/<username> form.
func (p *profileExtractor) ExtractGithubURL(text string) (string, bool) {
	for _, pattern := range githubURLPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		username := match[1]
		if username == "" {
			continue
		}
		return "https://github.com/" + username, true
	}
	return "", false
}

// ExtractSkills locates a skills-like section and tokenizes it into
// candidate skill strings. This is a best-effort heuristic: false positives
// and negatives are expected and acceptable.
func (p *profileExtractor) ExtractSkills(text string) []string {
	loc := skillsHeadingPattern.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	section := text[loc[1]:]

	var sectionLines []string
	for i, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if i > 0 && trimmed == "" {
			break
		}
		if i > 0 && headingLinePattern.MatchString(trimmed) {
			break
		}
		sectionLines = append(sectionLines, trimmed)
	}

	tokens := skillTokenPattern.FindAllString(strings.Join(sectionLines, "\n"), -1)

	seen := make(map[string]bool)
	var skills []string
	for _, token := range tokens {
		lower := strings.ToLower(token)
		if len(token) <= 2 && !shortSkillAllowList[lower] {
			continue
		}
		if seen[lower] {
			continue
		}
		seen[lower] = true
		skills = append(skills, token)
	}

	return skills
}

// IdentityFromURL derives the GithubIdentity from a normalized profile URL.
func IdentityFromURL(profileURL string) models.GithubIdentity {
	trimmed := strings.TrimRight(profileURL, "/")
	username := trimmed[strings.LastIndex(trimmed, "/")+1:]
	return models.GithubIdentity{
		Username:   username,
		ProfileURL: trimmed,
	}
}
