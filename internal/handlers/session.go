package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"alfredoptarigan/github-talent-scout/internal/models"
)

const (
	flowKey  = "flow"
	flashKey = "flash"
)

// loadFlow reads the per-flow context out of the request's session. A
// missing or corrupt record yields a zero FlowState.
func loadFlow(c *fiber.Ctx, store *session.Store) models.FlowState {
	var flow models.FlowState

	sess, err := store.Get(c)
	if err != nil {
		return flow
	}

	raw, ok := sess.Get(flowKey).(string)
	if !ok || raw == "" {
		return flow
	}

	if err := json.Unmarshal([]byte(raw), &flow); err != nil {
		log.Printf("⚠️  Failed to decode flow state: %v", err)
	}
	return flow
}

// saveFlow overwrites the per-flow context. A second upload mid-flight
// simply replaces whatever was there; there is no locking or coalescing.
func saveFlow(c *fiber.Ctx, store *session.Store, flow models.FlowState) {
	sess, err := store.Get(c)
	if err != nil {
		log.Printf("⚠️  Failed to open session: %v", err)
		return
	}

	raw, err := json.Marshal(flow)
	if err != nil {
		log.Printf("⚠️  Failed to encode flow state: %v", err)
		return
	}

	sess.Set(flowKey, string(raw))
	if err := sess.Save(); err != nil {
		log.Printf("⚠️  Failed to save session: %v", err)
	}
}

// setFlash stores a one-shot status message for the next rendered page.
func setFlash(c *fiber.Ctx, store *session.Store, message string) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	sess.Set(flashKey, message)
	if err := sess.Save(); err != nil {
		log.Printf("⚠️  Failed to save session: %v", err)
	}
}

// popFlash returns and clears the pending status message, if any.
func popFlash(c *fiber.Ctx, store *session.Store) string {
	sess, err := store.Get(c)
	if err != nil {
		return ""
	}

	message, ok := sess.Get(flashKey).(string)
	if !ok || message == "" {
		return ""
	}

	sess.Delete(flashKey)
	if err := sess.Save(); err != nil {
		log.Printf("⚠️  Failed to save session: %v", err)
	}
	return message
}
