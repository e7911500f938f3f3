package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/controller"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/service"
)

type CatalogController struct {
	catalogService     service.CatalogService
	questionService    service.QuestionService
	explanationService service.ExplanationService
}

func NewCatalogController(
	catalogService service.CatalogService,
	questionService service.QuestionService,
	explanationService service.ExplanationService,
) *CatalogController {
	return &CatalogController{
		catalogService:     catalogService,
		questionService:    questionService,
		explanationService: explanationService,
	}
}

// ListCategories godoc
// @Summary List exam categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.CategorySummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.catalogService.ListCategories()
	if err != nil {
		controller.RespondError(ctx, "ListCategories", err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a category with its blocks and topics
// @Tags Catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} dto.CategoryDetail
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{slug} [get]
func (c *CatalogController) GetCategory(ctx *gin.Context) {
	category, err := c.catalogService.GetCategory(ctx.Param("slug"))
	if err != nil {
		controller.RespondError(ctx, "GetCategory", err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// ListBlocks godoc
// @Summary List blocks
// @Tags Catalog
// @Produce json
// @Param category query string false "Category slug"
// @Success 200 {array} dto.BlockDTO
// @Router /blocks [get]
func (c *CatalogController) ListBlocks(ctx *gin.Context) {
	blocks, err := c.catalogService.ListBlocks(ctx.Query("category"))
	if err != nil {
		controller.RespondError(ctx, "ListBlocks", err)
		return
	}
	ctx.JSON(http.StatusOK, blocks)
}

// ListTopics godoc
// @Summary List topics
// @Tags Catalog
// @Produce json
// @Param category query string false "Category slug"
// @Param block query int false "Block number"
// @Success 200 {array} dto.TopicDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /topics [get]
func (c *CatalogController) ListTopics(ctx *gin.Context) {
	var block int
	if raw := ctx.Query("block"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid block number"})
			return
		}
		block = n
	}
	topics, err := c.catalogService.ListTopics(ctx.Query("category"), block)
	if err != nil {
		controller.RespondError(ctx, "ListTopics", err)
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// GetTopic godoc
// @Summary Get a topic
// @Tags Catalog
// @Produce json
// @Param slug path string true "Topic slug"
// @Success 200 {object} dto.TopicDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /topics/{slug} [get]
func (c *CatalogController) GetTopic(ctx *gin.Context) {
	topic, err := c.catalogService.GetTopic(ctx.Param("slug"))
	if err != nil {
		controller.RespondError(ctx, "GetTopic", err)
		return
	}
	ctx.JSON(http.StatusOK, topic)
}

// TopicQuestions godoc
// @Summary Questions for a topic
// @Description Premium topics return only a 5 question preview to callers without an active subscription.
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Topic slug"
// @Success 200 {object} dto.TopicQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /topics/{slug}/questions [get]
func (c *CatalogController) TopicQuestions(ctx *gin.Context) {
	resp, err := c.questionService.ForTopic(ctx.Param("slug"), auth.FromContext(ctx))
	if err != nil {
		controller.RespondError(ctx, "TopicQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// QuestionDetails godoc
// @Summary Questions by id, without the correct answer flag
// @Tags Questions
// @Accept json
// @Produce json
// @Param ids body dto.QuestionIDsRequest true "Question ids"
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions/details [post]
func (c *CatalogController) QuestionDetails(ctx *gin.Context) {
	var req dto.QuestionIDsRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	questions, err := c.questionService.Details(req.IDs)
	if err != nil {
		controller.RespondError(ctx, "QuestionDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// ReviewQuestions godoc
// @Summary Questions by id with correct answers and justifications
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body dto.QuestionIDsRequest true "Question ids"
// @Success 200 {array} dto.QuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /questions/review [post]
func (c *CatalogController) ReviewQuestions(ctx *gin.Context) {
	var req dto.QuestionIDsRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	questions, err := c.questionService.Review(req.IDs)
	if err != nil {
		controller.RespondError(ctx, "ReviewQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// DemoQuestions godoc
// @Summary Random demo questions
// @Tags Questions
// @Produce json
// @Param n query int false "Number of questions (1-15)" default(10)
// @Success 200 {array} dto.QuestionDTO
// @Router /questions/demo [get]
func (c *CatalogController) DemoQuestions(ctx *gin.Context) {
	n, err := strconv.Atoi(ctx.DefaultQuery("n", "10"))
	if err != nil {
		n = 10
	}
	questions, err := c.questionService.Demo(n)
	if err != nil {
		controller.RespondError(ctx, "DemoQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// ExplainQuestion godoc
// @Summary Explanation of the correct answer
// @Description Subscribers only. Stored justifications are preferred over generated ones.
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.ExplanationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /questions/{id}/explanation [get]
func (c *CatalogController) ExplainQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.explanationService.Explain(ctx.Request.Context(), auth.FromContext(ctx), id)
	if err != nil {
		controller.RespondError(ctx, "ExplainQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
