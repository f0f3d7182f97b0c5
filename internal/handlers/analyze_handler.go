package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"alfredoptarigan/github-talent-scout/internal/services"
)

type AnalyzeHandler struct {
	store    *session.Store
	pipeline services.AnalysisPipeline
}

func NewAnalyzeHandler(store *session.Store, pipeline services.AnalysisPipeline) *AnalyzeHandler {
	return &AnalyzeHandler{
		store:    store,
		pipeline: pipeline,
	}
}

// HandleAnalyze runs the full pipeline for the identity stored in the flow
// and renders the combined result page. A profile-fetch failure aborts the
// whole flow and lands on the error page; downstream enrichment failures
// were already absorbed inside the pipeline.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	flow := loadFlow(c, h.store)
	if flow.GithubURL == "" {
		setFlash(c, h.store, "Please upload a resume or enter a GitHub profile URL first")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	identity := services.IdentityFromURL(flow.GithubURL)

	result, err := h.pipeline.Run(c.Context(), identity, flow.Skills, flow.ResumeText)
	if err != nil {
		log.Printf("❌ Analysis failed for %s: %v", identity.Username, err)
		return c.Render("error", fiber.Map{
			"Message": "Failed to analyze GitHub profile: " + err.Error(),
		})
	}

	return c.Render("result", fiber.Map{
		"Flash":  popFlash(c, h.store),
		"Result": result,
	})
}
