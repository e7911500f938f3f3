package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"not found", &service.Error{Kind: service.ErrNotFound, Message: "topic not found"}, http.StatusNotFound, "topic not found"},
		{"validation", &service.Error{Kind: service.ErrValidation, Message: "bad"}, http.StatusBadRequest, "bad"},
		{"unauthorized", &service.Error{Kind: service.ErrUnauthorized, Message: "login required"}, http.StatusUnauthorized, "login required"},
		{"forbidden", &service.Error{Kind: service.ErrForbidden, Message: "premium"}, http.StatusForbidden, "premium"},
		{"conflict", &service.Error{Kind: service.ErrConflict, Message: "done"}, http.StatusConflict, "done"},
		{"integration", &service.Error{Kind: service.ErrIntegration, Message: "smtp"}, http.StatusBadGateway, "smtp"},
		{"wrapped", fmt.Errorf("ctx: %w", &service.Error{Kind: service.ErrNotFound, Message: "gone"}), http.StatusNotFound, "gone"},
		{"no results", &service.Error{Kind: service.ErrNoResults, Message: "nothing yet"}, http.StatusOK, "nothing yet"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			RespondError(ctx, "Test", tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

type bindTarget struct {
	Email string `json:"email" binding:"required,email"`
	Count int    `json:"count" binding:"min=1"`
}

func TestBindJSONReportsFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope","count":0}`))
	ctx.Request.Header.Set("Content-Type", "application/json")

	var target bindTarget
	assert.False(t, BindJSON(ctx, &target))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Email: failed 'email'", "Count: failed 'min=1'"}, body.Details)
}

func TestParseIDParam(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		ok   bool
		want uint
	}{
		{"42", true, 42},
		{"0", false, 0},
		{"abc", false, 0},
		{"-1", false, 0},
	} {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: tc.raw}}

		id, ok := ParseIDParam(ctx, "id")
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, id, tc.raw)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
