package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cellbench/internal/model"
)

// writeError maps core error kinds onto HTTP statuses. The core rejects
// bad operations and leaves state unchanged, so everything here is a
// client-visible condition, not a server fault.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	switch {
	case errors.Is(err, model.ErrCellNotFound):
		status, code = http.StatusNotFound, "CELL_NOT_FOUND"
	case errors.Is(err, model.ErrUnknownChemistry):
		status, code = http.StatusBadRequest, "UNKNOWN_CHEMISTRY"
	case errors.Is(err, model.ErrInvalidValue):
		status, code = http.StatusBadRequest, "INVALID_VALUE"
	case errors.Is(err, model.ErrEmptyStore):
		status, code = http.StatusUnprocessableEntity, "EMPTY_STORE"
	case errors.Is(err, model.ErrInsufficientData):
		status, code = http.StatusUnprocessableEntity, "INSUFFICIENT_DATA"
	}
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": err.Error(),
		},
	})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"code":    "BAD_REQUEST",
			"message": err.Error(),
		},
	})
}
