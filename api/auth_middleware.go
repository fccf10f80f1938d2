package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/club-booking-backend/auth"
)

const actorKey = "actor"

type TokenVerifier interface {
	Verify(token string) (auth.Actor, error)
}

func JWTAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		actor, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
	}
}

func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.MustGet(actorKey).(auth.Actor)

		if !slices.Contains(roles, actor.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func actorFrom(c *gin.Context) auth.Actor {
	return c.MustGet(actorKey).(auth.Actor)
}
