package http

import (
	"errors"
	"net/http"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "orderflow.actor"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is what the identity provider puts into the bearer token. The subject is
// the id of the customer, vendor, agent or admin.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ParseActor validates an HS256 token and returns the identity it carries.
func ParseActor(tokenStr string, secret []byte) (kernel.Actor, error) {
	if len(secret) == 0 {
		return kernel.Actor{}, errors.New("jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return kernel.Actor{}, ErrInvalidToken
	}

	c, _ := tok.Claims.(*Claims)
	if c == nil {
		return kernel.Actor{}, ErrInvalidToken
	}
	role, err := kernel.ParseRole(strings.ToLower(c.Role))
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}
	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}
	return kernel.Actor{Role: role, ID: id}, nil
}

// SignActor issues a token for actor. It is used by tooling and tests; production tokens
// come from the identity provider.
func SignActor(actor kernel.Actor, secret []byte) (string, error) {
	claims := Claims{
		Role:             actor.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: actor.ID.String()},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Authenticate resolves the bearer token of every request that is not skipped into a
// kernel.Actor stored on the echo context.
func Authenticate(secret []byte, skip func(c echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip != nil && skip(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthenticated(c, ErrMissingToken)
			}

			actor, err := ParseActor(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				return unauthenticated(c, err)
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func unauthenticated(c echo.Context, err error) error {
	return c.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}

func actorFrom(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorKey).(kernel.Actor)
	return actor
}
