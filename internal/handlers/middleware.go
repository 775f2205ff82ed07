package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey        = "userId"
	accessTokenParam = "access_token" // browsers cannot set headers on a WebSocket handshake
)

func (h *Handler) userIdMiddleware(c *gin.Context) {
	h.authenticate(c, false)
}

// wsUserIdMiddleware also accepts ?access_token=; only the websocket route uses it.
func (h *Handler) wsUserIdMiddleware(c *gin.Context) {
	h.authenticate(c, true)
}

func (h *Handler) authenticate(c *gin.Context, allowQuery bool) {
	token, msg := bearerToken(c, allowQuery)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": msg,
		})
		return
	}

	userId, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(userIDKey, userId)
	c.Next()
}

// bearerToken reads the Authorization header, falling back to ?access_token= when allowQuery is set.
// On failure it returns "" and the error message to show.
func bearerToken(c *gin.Context, allowQuery bool) (string, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if t := c.Query(accessTokenParam); allowQuery && t != "" {
			return t, ""
		}
		return "", "missing Authorization header"
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", "invalid Authorization header format"
	}
	return parts[1], ""
}

// currentUser returns the id stored by userIdMiddleware.
func currentUser(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
