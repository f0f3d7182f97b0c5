package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"alfredoptarigan/github-talent-scout/internal/services"
)

type GithubHandler struct {
	store    *session.Store
	profiles services.ProfileExtractor
}

func NewGithubHandler(store *session.Store, profiles services.ProfileExtractor) *GithubHandler {
	return &GithubHandler{
		store:    store,
		profiles: profiles,
	}
}

// HandleConfirmPage renders the manual GitHub entry form.
func (h *GithubHandler) HandleConfirmPage(c *fiber.Ctx) error {
	return c.Render("confirm", fiber.Map{
		"Flash": popFlash(c, h.store),
	})
}

// HandleManualGithub handles POST /github: the user-supplied profile URL
// always takes precedence over anything derived from the resume.
func (h *GithubHandler) HandleManualGithub(c *fiber.Ctx) error {
	githubURL := strings.TrimSpace(c.FormValue("github_url"))
	if githubURL == "" || !strings.Contains(githubURL, "github.com") {
		setFlash(c, h.store, "Please enter a valid GitHub profile URL")
		return c.Redirect("/confirm", fiber.StatusSeeOther)
	}

	flow := loadFlow(c, h.store)
	flow.GithubURL = githubURL

	// Re-derive skills from the stored resume text when the earlier
	// extraction produced none.
	if len(flow.Skills) == 0 && flow.ResumeText != "" {
		flow.Skills = h.profiles.ExtractSkills(flow.ResumeText)
	}

	saveFlow(c, h.store, flow)
	return c.Redirect("/analyze", fiber.StatusSeeOther)
}
