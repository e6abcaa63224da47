package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sungminna/exchange-credentials/internal/service/credential"
)

// StatusFor maps a credential error kind to an HTTP status code
func StatusFor(kind credential.Kind) int {
	switch kind {
	case credential.KindValidationFailed:
		return http.StatusBadRequest
	case credential.KindAlreadyExists:
		return http.StatusConflict
	case credential.KindAccountNotFound, credential.KindKeyNotSet:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	kind := credential.KindOf(err)
	if kind == 0 {
		kind = credential.KindStorageFailure
	}
	c.JSON(StatusFor(kind), gin.H{"error": err.Error(), "code": kind.String()})
}
