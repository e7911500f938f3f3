package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/controller"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/service"
)

type SessionController struct {
	sessionService service.SessionService
	resultService  service.ResultService
	statsService   service.StatsService
}

func NewSessionController(
	sessionService service.SessionService,
	resultService service.ResultService,
	statsService service.StatsService,
) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		resultService:  resultService,
		statsService:   statsService,
	}
}

func parseSessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateSession godoc
// @Summary Start a test session
// @Description Accepts question_ids or the legacy preguntas_ids field.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body dto.CreateSessionRequest true "Session data"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.sessionService.Create(auth.FromContext(ctx), req)
	if err != nil {
		controller.RespondError(ctx, "CreateSession", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListSessions godoc
// @Summary List own sessions, newest first
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param pending query bool false "Only in_progress or abandoned"
// @Param type query string false "topic, review or exam"
// @Param limit query int false "Maximum number of sessions"
// @Success 200 {array} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sessions [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	var query dto.SessionListQuery
	if !controller.BindQuery(ctx, &query) {
		return
	}
	sessions, err := c.sessionService.List(auth.FromContext(ctx), query)
	if err != nil {
		controller.RespondError(ctx, "ListSessions", err)
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary Get one of the caller's sessions
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session UUID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	id, ok := parseSessionID(ctx)
	if !ok {
		return
	}
	resp, err := c.sessionService.Get(auth.FromContext(ctx), id)
	if err != nil {
		controller.RespondError(ctx, "GetSession", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateSession godoc
// @Summary Save session progress
// @Description Partial update. Answers are merged into the stored ones. Finished sessions reject updates.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session UUID"
// @Param session body dto.UpdateSessionRequest true "Fields to change"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Session already finished"
// @Router /sessions/{id} [patch]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	id, ok := parseSessionID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateSessionRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.sessionService.Update(auth.FromContext(ctx), id, req)
	if err != nil {
		controller.RespondError(ctx, "UpdateSession", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CompleteSession godoc
// @Summary Finish and score a session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session UUID"
// @Success 200 {object} dto.CompleteSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{id}/complete [post]
func (c *SessionController) CompleteSession(ctx *gin.Context) {
	id, ok := parseSessionID(ctx)
	if !ok {
		return
	}
	resp, err := c.sessionService.Complete(auth.FromContext(ctx), id)
	if err != nil {
		controller.RespondError(ctx, "CompleteSession", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListResults godoc
// @Summary List own results, newest first
// @Tags Results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResultDTO
// @Router /results [get]
func (c *SessionController) ListResults(ctx *gin.Context) {
	results, err := c.resultService.List(auth.FromContext(ctx))
	if err != nil {
		controller.RespondError(ctx, "ListResults", err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// CreateResult godoc
// @Summary Record a finished test
// @Tags Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result body dto.CreateResultRequest true "topic_id or topic_slug, correct and total"
// @Success 201 {object} dto.ResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /results [post]
func (c *SessionController) CreateResult(ctx *gin.Context) {
	var req dto.CreateResultRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.resultService.Create(auth.FromContext(ctx), req)
	if err != nil {
		controller.RespondError(ctx, "CreateResult", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Stats godoc
// @Summary Personal statistics
// @Description Answers {"message"} with 200 when the user has no results yet.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (c *SessionController) Stats(ctx *gin.Context) {
	resp, err := c.statsService.Stats(auth.FromContext(ctx))
	if err != nil {
		controller.RespondError(ctx, "Stats", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Reinforcement godoc
// @Summary Topics to master, review and deepen
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ReinforcementResponse
// @Router /stats/reinforcement [get]
func (c *SessionController) Reinforcement(ctx *gin.Context) {
	resp, err := c.statsService.Reinforcement(auth.FromContext(ctx))
	if err != nil {
		controller.RespondError(ctx, "Reinforcement", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// WeeklyRanking godoc
// @Summary Leaderboard for the current week
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.RankingResponse
// @Router /ranking/weekly [get]
func (c *SessionController) WeeklyRanking(ctx *gin.Context) {
	resp, err := c.statsService.Ranking(auth.FromContext(ctx))
	if err != nil {
		controller.RespondError(ctx, "WeeklyRanking", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
