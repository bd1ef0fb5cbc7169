package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"lumina/backend/config"
)

// GenerateSessionToken mints the bearer token handed back on login. It
// carries the registration number only — the user record itself lives in
// the store.
func GenerateSessionToken(regNo string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"reg_no": regNo,
		"exp":    time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractRegNoFromToken validates the Authorization header and returns the
// registration number it was minted for.
func ExtractRegNoFromToken(c *fiber.Ctx, cfg *config.Config) (string, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	regNo, ok := claims["reg_no"].(string)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid registration number in token")
	}

	return regNo, nil
}
