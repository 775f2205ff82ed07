package handlers

import (
	"net/http"

	"battery_dashboard/web"

	"github.com/gin-gonic/gin"
)

// @Summary      Dashboard page
// @Tags         system
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index)
}
