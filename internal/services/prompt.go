package services

import (
	"fmt"
	"sort"
	"strings"

	"alfredoptarigan/github-talent-scout/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// maxContributedRepos caps how many contributed-repo URLs are embedded in
// the candidate prompt.
const maxContributedRepos = 5

// maxHistogramEvents is how many of the most recent activity events feed
// the event-type histogram.
const maxHistogramEvents = 30

// BuildCandidatePrompt assembles the single large prompt for the full
// candidate assessment.
func (pb *PromptBuilder) BuildCandidatePrompt(
	snapshot *models.ProfileSnapshot,
	contributedRepos []string,
	fileSummaries []models.RepoFileSummaries,
	skills []string,
	resumeText string,
) string {
	var sb strings.Builder

	sb.WriteString(`You are a senior technical recruiter assessing a software engineering candidate. Use their GitHub profile, repositories, recent activity, and resume below.

`)

	sb.WriteString("CANDIDATE PROFILE:\n")
	sb.WriteString(formatProfile(snapshot.Profile))

	sb.WriteString("\nOWNED REPOSITORIES:\n")
	if len(snapshot.Repositories) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, repo := range snapshot.Repositories {
		sb.WriteString(formatRepoLine(repo))
	}

	if len(contributedRepos) > 0 {
		sb.WriteString("\nREPOSITORIES CONTRIBUTED TO:\n")
		limit := len(contributedRepos)
		if limit > maxContributedRepos {
			limit = maxContributedRepos
		}
		for _, url := range contributedRepos[:limit] {
			sb.WriteString(fmt.Sprintf("- %s\n", url))
		}
	}

	if len(fileSummaries) > 0 {
		sb.WriteString("\nCODE FILE SUMMARIES:\n")
		for _, repo := range fileSummaries {
			sb.WriteString(fmt.Sprintf("\nRepository %s:\n", repo.RepoName))
			for _, fs := range repo.Summaries {
				sb.WriteString(fmt.Sprintf("- %s: %s\n", fs.Filename, fs.Summary))
			}
		}
	}

	sb.WriteString("\nRECENT ACTIVITY:\n")
	sb.WriteString(formatEventHistogram(snapshot.Events))

	if len(skills) > 0 {
		sb.WriteString("\nSKILLS LISTED ON RESUME:\n")
		sb.WriteString(strings.Join(skills, ", "))
		sb.WriteString("\n")
	}

	if resumeText != "" {
		sb.WriteString("\nFULL RESUME TEXT:\n")
		sb.WriteString(resumeText)
		sb.WriteString("\n")
	}

	sb.WriteString(`
Provide a technical assessment in Markdown format with this exact structure:

## Candidate Assessment

### 1. Profile Summary
[Summarize who this candidate is based on profile and repositories]

### 2. Skills Verification
[Compare the skills claimed on the resume against what the code actually shows]

### 3. Hidden Talents
[Skills evident from the code but not claimed on the resume]

### 4. Consistency Analysis
[Does the GitHub activity support the resume's narrative?]

### 5. Overall Rating
Overall Rating: <1-5>/5
Rationale: [One paragraph justifying the rating]

### 6. Interviewer Recommendations
[Specific topics and questions an interviewer should probe]

Return ONLY the Markdown text with no preamble or explanation.`)

	return sb.String()
}

// BuildRepoReviewPrompt assembles the standalone single-repository review
// prompt. Each file is truncated to maxChars before embedding.
func (pb *PromptBuilder) BuildRepoReviewPrompt(contents *models.RepoContents, skills []string, maxChars int) string {
	repoName := contents.Info.Name
	if repoName == "" {
		repoName = "Unknown"
	}
	description := contents.Info.Description
	if description == "" {
		description = "No description available"
	}

	var fileList strings.Builder
	for _, file := range contents.Files {
		fileList.WriteString(fmt.Sprintf("- %s\n", file.Path))
	}

	var fileContents strings.Builder
	for _, file := range contents.Files {
		content := file.Content
		if len(content) > maxChars {
			content = content[:maxChars] + "..."
		}
		fileContents.WriteString(fmt.Sprintf("\n\n### File: %s\n```\n%s\n```", file.Path, content))
	}

	skillsLine := "(no resume skills provided)"
	if len(skills) > 0 {
		skillsLine = strings.Join(skills, ", ")
	}

	return fmt.Sprintf(`You are a senior software developer reviewing code quality. Analyze this GitHub repository in the context of a candidate who claims these skills: %s

Repository: %s
Description: %s

Files in the repository:
%s
%s

Provide a detailed review in Markdown format with this exact structure:

## Code Review: %s

### 1. Skills Demonstrated
[Languages, frameworks, and techniques the code actually demonstrates]

### 2. Code Quality
[Readability, structure, naming, error handling, and testing]

### 3. Skill Verification
[Which of the claimed skills this repository confirms or contradicts]

### 4. Sophistication
[How advanced the work is relative to a typical portfolio project]

### 5. Interview Questions
[Specific questions about this codebase to ask the candidate]

Return ONLY the Markdown text with no preamble or explanation. Ensure formatting is correct with proper Markdown syntax.`,
		skillsLine, repoName, description, fileList.String(), fileContents.String(), repoName)
}

func formatProfile(profile models.UserProfile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("- Login: %s\n", profile.Login))
	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("- Name: %s\n", profile.Name))
	}
	if profile.Bio != "" {
		sb.WriteString(fmt.Sprintf("- Bio: %s\n", profile.Bio))
	}
	if profile.Company != "" {
		sb.WriteString(fmt.Sprintf("- Company: %s\n", profile.Company))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("- Location: %s\n", profile.Location))
	}
	sb.WriteString(fmt.Sprintf("- Followers: %d, Following: %d\n", profile.Followers, profile.Following))
	sb.WriteString(fmt.Sprintf("- Public repositories: %d\n", profile.PublicRepos))
	if profile.CreatedAt != "" {
		sb.WriteString(fmt.Sprintf("- Account created: %s\n", profile.CreatedAt))
	}
	return sb.String()
}

func formatRepoLine(repo models.RepoSummary) string {
	description := repo.Description
	if description == "" {
		description = "no description"
	}
	language := repo.Language
	if language == "" {
		language = "unknown"
	}
	return fmt.Sprintf("- %s (%s, %d stars, %d forks): %s\n",
		repo.Name, language, repo.Stars, repo.Forks, description)
}

// formatEventHistogram counts event types over the most recent events and
// renders them sorted by count.
func formatEventHistogram(events []models.Event) string {
	if len(events) == 0 {
		return "(no recent public activity)\n"
	}

	limit := len(events)
	if limit > maxHistogramEvents {
		limit = maxHistogramEvents
	}

	counts := make(map[string]int)
	for _, ev := range events[:limit] {
		counts[ev.Type]++
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return types[i] < types[j]
	})

	var sb strings.Builder
	for _, t := range types {
		sb.WriteString(fmt.Sprintf("- %s: %d\n", t, counts[t]))
	}
	return sb.String()
}
