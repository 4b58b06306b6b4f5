package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
)

// writeStoreError maps store failures onto the API's error envelope.
// Missing configuration is the caller-visible 400 the original API
// produced; everything upstream surfaces as a 500 with the store's
// message verbatim.
func writeStoreError(c *gin.Context, err error, configMessage string) {
	if errors.Is(err, notion.ErrNotConfigured) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(configMessage, ""))
		return
	}
	c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error(), ""))
}
