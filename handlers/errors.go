package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"cantina-api/models"

	"github.com/gin-gonic/gin"
)

// respondError writes the status and body matching err. notFound is the
// message used for missing resources. Backend details are logged, never sent.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock insuficiente", "detalle": err.Error()})
	case errors.Is(err, models.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, gin.H{"error": "El usuario ya existe"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan campos requeridos o son inválidos", "detalle": err.Error()})
	case errors.Is(err, models.ErrAuthentication):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
	}
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	respondError(c, models.NewValidationError("", err.Error()), "")
}

// paramID parses the :id path parameter and writes a 400 when it is not a number
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return id, true
}
