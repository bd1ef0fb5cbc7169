package controllers

import (
	"github.com/gofiber/fiber/v2"

	"lumina/backend/config"
	"lumina/backend/core"
	"lumina/backend/models"
	"lumina/backend/utils"
)

type ProgressController struct {
	State *core.State
	Cfg   *config.Config
}

func NewProgressController(state *core.State, cfg *config.Config) *ProgressController {
	return &ProgressController{State: state, Cfg: cfg}
}

func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	progress, ok := pc.State.Progress()
	if !ok {
		return utils.NotFound(c, "no progress record")
	}
	return c.JSON(progress)
}

// UpdateProgress merges a partial record over the resident one. When the
// guard declines (no user or no resident progress) nothing changed, so the
// answer is an empty 204 — the contract never reports why.
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	var upd models.ProgressUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if !pc.State.UpdateProgress(c.Context(), upd) {
		return utils.NoContent(c)
	}

	progress, _ := pc.State.Progress()
	return c.JSON(progress)
}
