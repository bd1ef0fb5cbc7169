package controllers

import (
	"github.com/gofiber/fiber/v2"

	"lumina/backend/config"
	"lumina/backend/core"
	"lumina/backend/models"
	"lumina/backend/utils"
)

type SyllabusController struct {
	State *core.State
	Cfg   *config.Config
}

func NewSyllabusController(state *core.State, cfg *config.Config) *SyllabusController {
	return &SyllabusController{State: state, Cfg: cfg}
}

func (sc *SyllabusController) GetSyllabus(c *fiber.Ctx) error {
	doc, ok := sc.State.Syllabus()
	if !ok {
		return utils.NotFound(c, "no syllabus uploaded")
	}
	return c.JSON(doc)
}

// Upload replaces the resident syllabus and resets progress for it. The
// response carries both documents so the client can render without a second
// round trip.
func (sc *SyllabusController) Upload(c *fiber.Ctx) error {
	var doc models.Syllabus
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if !sc.State.UploadSyllabus(c.Context(), doc) {
		return utils.Unauthorized(c, "no active user")
	}

	syllabus, _ := sc.State.Syllabus()
	progress, _ := sc.State.Progress()
	return c.JSON(fiber.Map{
		"syllabus":   syllabus,
		"progress":   progress,
		"activeView": models.ViewMap,
	})
}
