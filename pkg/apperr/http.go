package apperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPStatus maps an error kind to its response status.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindDelivery:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError is the single place business errors become HTTP
// responses. Every mapped error is logged with its kind, message and
// request URI.
func AbortWithError(c *gin.Context, err error) {
	kind := KindOf(err)
	log.Printf("[ERROR] %s: %v (uri=%s)", kind, err, c.Request.URL.RequestURI())
	c.AbortWithStatusJSON(HTTPStatus(kind), gin.H{"error": err.Error()})
}
