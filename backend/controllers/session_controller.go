package controllers

import (
	"github.com/gofiber/fiber/v2"

	"lumina/backend/config"
	"lumina/backend/core"
	"lumina/backend/models"
	"lumina/backend/utils"
)

type SessionController struct {
	State *core.State
	Cfg   *config.Config
}

func NewSessionController(state *core.State, cfg *config.Config) *SessionController {
	return &SessionController{State: state, Cfg: cfg}
}

// Login accepts the identity provider's user record as-is and makes it the
// current session. No field validation — authentication happened upstream.
func (sc *SessionController) Login(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	sc.State.Login(c.Context(), user)

	token, err := utils.GenerateSessionToken(user.RegNo, sc.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout clears the session and everything derived from it. The user-scoped
// syllabus and progress entries stay in the store.
func (sc *SessionController) Logout(c *fiber.Ctx) error {
	sc.State.Logout(c.Context())
	return utils.NoContent(c)
}

// Session returns the current user, restoring it from the store when the
// in-memory slot is empty (e.g. after a server restart).
func (sc *SessionController) Session(c *fiber.Ctx) error {
	user, ok := sc.State.User()
	if !ok {
		user, ok = sc.State.RestoreSession(c.Context())
	}
	if !ok {
		return utils.NotFound(c, "no active session")
	}
	return c.JSON(fiber.Map{"user": user})
}
