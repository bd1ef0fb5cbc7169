package controllers

import (
	"github.com/gofiber/fiber/v2"

	"lumina/backend/config"
	"lumina/backend/core"
	"lumina/backend/models"
	"lumina/backend/utils"
)

type NavigationController struct {
	State *core.State
	Cfg   *config.Config
}

func NewNavigationController(state *core.State, cfg *config.Config) *NavigationController {
	return &NavigationController{State: state, Cfg: cfg}
}

// GetView reports the navigation state. Reading it advances a pending topic
// hand-off: the response that shows "clearing" is the last one with the old
// view, the next read sees the new topic and view.
func (nc *NavigationController) GetView(c *fiber.Ctx) error {
	return c.JSON(nc.State.ObserveNavigation())
}

func (nc *NavigationController) SetView(c *fiber.Ctx) error {
	var body struct {
		View models.View `json:"view"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if !models.ValidView(body.View) {
		return utils.BadRequest(c, "unknown view")
	}

	nc.State.SetActiveView(body.View)
	return c.JSON(fiber.Map{"activeView": body.View})
}

// TopicAction starts the two-phase hand-off from the roadmap or analytics
// view into the quiz or tutor view focused on one topic.
func (nc *NavigationController) TopicAction(c *fiber.Ctx) error {
	var body struct {
		Topic string      `json:"topic"`
		View  models.View `json:"view"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if body.Topic == "" {
		return utils.BadRequest(c, "missing topic")
	}
	if body.View != models.ViewQuiz && body.View != models.ViewTutor {
		return utils.BadRequest(c, "topic hand-off targets quiz or tutor")
	}

	nc.State.HandleTopicAction(body.Topic, body.View)
	return c.JSON(fiber.Map{"clearing": true})
}

// ClearTopic is called by the consuming view once it has picked up the
// selected topic.
func (nc *NavigationController) ClearTopic(c *fiber.Ctx) error {
	nc.State.ClearSelectedTopic()
	return utils.NoContent(c)
}

// GetState returns the full prop contract the view shell renders from.
func (nc *NavigationController) GetState(c *fiber.Ctx) error {
	return c.JSON(nc.State.Snapshot())
}
