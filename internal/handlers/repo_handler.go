package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"alfredoptarigan/github-talent-scout/internal/services"
)

type RepoHandler struct {
	store    *session.Store
	github   services.GithubService
	reviewer services.RepoAnalyzer
}

func NewRepoHandler(store *session.Store, github services.GithubService, reviewer services.RepoAnalyzer) *RepoHandler {
	return &RepoHandler{
		store:    store,
		github:   github,
		reviewer: reviewer,
	}
}

// HandleRepoReview serves the standalone per-repository analysis page,
// driven by a repo_url query or form parameter.
func (h *RepoHandler) HandleRepoReview(c *fiber.Ctx) error {
	repoURL := strings.TrimSpace(c.FormValue("repo_url"))
	if repoURL == "" {
		repoURL = strings.TrimSpace(c.Query("repo_url"))
	}
	if repoURL == "" {
		setFlash(c, h.store, "Please enter a GitHub repository URL")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	contents, err := h.github.FetchRepositoryContents(c.Context(), repoURL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRepoURL) {
			setFlash(c, h.store, "Invalid GitHub repository URL")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		log.Printf("❌ Repository fetch failed for %s: %v", repoURL, err)
		return c.Render("error", fiber.Map{
			"Message": "Failed to fetch repository: " + err.Error(),
		})
	}

	flow := loadFlow(c, h.store)
	analysis := h.reviewer.Analyze(c.Context(), contents, flow.Skills)

	return c.Render("repo", fiber.Map{
		"RepoURL":   repoURL,
		"RepoName":  contents.Info.Name,
		"RepoOwner": contents.Info.OwnerLogin,
		"Analysis":  analysis,
	})
}
