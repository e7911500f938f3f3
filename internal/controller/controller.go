// Package controller holds helpers shared by the user and admin handlers.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/service"
	"github.com/rs/zerolog/log"
)

var statusByKind = []struct {
	kind   error
	status int
}{
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrConflict, http.StatusConflict},
	{service.ErrIntegration, http.StatusBadGateway},
}

// RespondError writes err as a dto.ErrorResponse. Errors that are not service
// errors become a 500 with a generic message and are logged with op.
func RespondError(ctx *gin.Context, op string, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		if errors.Is(err, service.ErrNoResults) {
			ctx.JSON(http.StatusOK, dto.MessageResponse{Message: svcErr.Message})
			return
		}
		for _, m := range statusByKind {
			if errors.Is(err, m.kind) {
				log.Debug().Err(err).Str("op", op).Int("status", m.status).Msg("Request rejected")
				ctx.JSON(m.status, dto.ErrorResponse{Message: svcErr.Message})
				return
			}
		}
	}
	log.Error().Err(err).Str("op", op).Msg("Unhandled service error")
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
}

// BindJSON binds the body into obj, answering 400 with per-field details on failure.
func BindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: validationDetails(err)})
		return false
	}
	return true
}

// BindQuery is BindJSON for query strings.
func BindQuery(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindQuery(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters", Details: validationDetails(err)})
		return false
	}
	return true
}

func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format", name)})
		return 0, false
	}
	return uint(id), true
}

func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s: failed '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		details = append(details, fmt.Sprintf("%s: failed '%s'", fe.Field(), fe.Tag()))
	}
	return details
}
