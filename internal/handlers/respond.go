package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GunarsK-portfolio/social-graph-service/internal/apperr"
)

// respondError maps a service error to its HTTP status and writes the
// structured {kind, message} body. Nothing is swallowed into logs only.
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	c.JSON(appErr.Status(), appErr)
}

// respondBindError reports a malformed request body or parameter.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, apperr.Error{
		Kind:    apperr.KindValidation,
		Message: err.Error(),
	})
}
