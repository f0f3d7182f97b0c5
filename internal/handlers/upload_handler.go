package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"alfredoptarigan/github-talent-scout/internal/models"
	"alfredoptarigan/github-talent-scout/internal/services"
)

type UploadHandler struct {
	store          *session.Store
	storageService services.StorageService
	extractor      services.ResumeExtractor
	profiles       services.ProfileExtractor
	maxFileSize    int64
}

func NewUploadHandler(
	store *session.Store,
	storageService services.StorageService,
	extractor services.ResumeExtractor,
	profiles services.ProfileExtractor,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		store:          store,
		storageService: storageService,
		extractor:      extractor,
		profiles:       profiles,
		maxFileSize:    maxFileSize,
	}
}

// HandleIndex renders the upload form.
func (h *UploadHandler) HandleIndex(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Flash": popFlash(c, h.store),
	})
}

// HandleUpload handles POST /upload. It accepts either a resume document or
// a direct GitHub URL; a direct URL short-circuits extraction entirely.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	if githubURL := strings.TrimSpace(c.FormValue("github_url")); githubURL != "" {
		if !strings.Contains(githubURL, "github.com") {
			setFlash(c, h.store, "Please enter a valid GitHub profile URL")
			return c.Redirect("/", fiber.StatusSeeOther)
		}

		saveFlow(c, h.store, models.FlowState{GithubURL: githubURL})
		return c.Redirect("/analyze", fiber.StatusSeeOther)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		setFlash(c, h.store, "Please upload a resume or enter a GitHub profile URL")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if file.Size > h.maxFileSize {
		setFlash(c, h.store, fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	filename, filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		setFlash(c, h.store, "Unsupported file type. Please upload a .pdf, .txt, or .docx resume")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	log.Printf("📄 Resume stored as %s", filename)

	rawText := h.extractor.ExtractText(filePath)
	skills := h.profiles.ExtractSkills(rawText)

	flow := models.FlowState{
		ResumePath: filePath,
		ResumeText: rawText,
		Skills:     skills,
	}

	if githubURL, ok := h.profiles.ExtractGithubURL(rawText); ok {
		flow.GithubURL = githubURL
		saveFlow(c, h.store, flow)
		return c.Redirect("/analyze", fiber.StatusSeeOther)
	}

	saveFlow(c, h.store, flow)
	setFlash(c, h.store, "No GitHub profile found on the resume. Please enter it manually.")
	return c.Redirect("/confirm", fiber.StatusSeeOther)
}
