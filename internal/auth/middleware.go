package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

const ImportKeyHeader = "X-Import-Key"

type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Optional resolves a bearer token when one is sent. Invalid or missing
// tokens leave the request anonymous.
func (m *Middleware) Optional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if id, ok := m.resolve(ctx); ok {
			SetIdentity(ctx, id)
		}
		ctx.Next()
	}
}

func (m *Middleware) Required() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := m.resolve(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication credentials were not provided or are invalid"})
			return
		}
		SetIdentity(ctx, id)
		ctx.Next()
	}
}

func (m *Middleware) Staff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := m.resolve(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication credentials were not provided or are invalid"})
			return
		}
		if !id.IsStaff {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Staff access required"})
			return
		}
		SetIdentity(ctx, id)
		ctx.Next()
	}
}

// StaffOrImportKey lets automated uploads through with the shared import key.
func (m *Middleware) StaffOrImportKey(importKey string) gin.HandlerFunc {
	staff := m.Staff()
	return func(ctx *gin.Context) {
		if key := ctx.GetHeader(ImportKeyHeader); importKey != "" && key != "" {
			if key == importKey {
				ctx.Next()
				return
			}
			log.Warn().Str("client_ip", ctx.ClientIP()).Msg("Rejected import request with wrong import key")
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Invalid import key"})
			return
		}
		staff(ctx)
	}
}

func (m *Middleware) resolve(ctx *gin.Context) (*Identity, bool) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(header, "Bearer "), "bearer "))
	claims, err := m.tokens.Parse(tokenString)
	if err != nil {
		return nil, false
	}
	user, err := m.users.FindByID(claims.UserID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", claims.UserID).Msg("Token for unknown user")
		return nil, false
	}
	if !user.IsActive {
		return nil, false
	}
	return &Identity{
		UserID:     user.ID,
		Username:   user.Username,
		Email:      user.Email,
		IsStaff:    user.IsStaff,
		Subscribed: user.Subscription != nil && user.Subscription.Active,
	}, true
}
