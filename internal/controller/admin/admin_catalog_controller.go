package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/controller"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminCatalogController struct {
	catalogService  service.AdminCatalogService
	templateService service.ExamTemplateService
	blogService     service.BlogService
}

func NewAdminCatalogController(
	catalogService service.AdminCatalogService,
	templateService service.ExamTemplateService,
	blogService service.BlogService,
) *AdminCatalogController {
	return &AdminCatalogController{
		catalogService:  catalogService,
		templateService: templateService,
		blogService:     blogService,
	}
}

// CreateCategory godoc
// @Summary (Admin) Create an exam category
// @Description The slug is derived from the name when omitted and made unique.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body dto.CreateCategoryRequest true "Category data"
// @Success 201 {object} dto.CategorySummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Name already in use"
// @Router /admin/categories [post]
func (c *AdminCatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.catalogService.CreateCategory(req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateCategory", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateBlock godoc
// @Summary (Admin) Create a block inside a category
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param block body dto.CreateBlockRequest true "Block data"
// @Success 201 {object} dto.BlockDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 409 {object} dto.ErrorResponse "Block number already used"
// @Router /admin/blocks [post]
func (c *AdminCatalogController) CreateBlock(ctx *gin.Context) {
	var req dto.CreateBlockRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.catalogService.CreateBlock(req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateBlock", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateTopic godoc
// @Summary (Admin) Create a topic inside a block
// @Description Topics are premium unless premium=false is sent.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param topic body dto.CreateTopicRequest true "Topic data"
// @Success 201 {object} dto.TopicDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Block not found"
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/topics [post]
func (c *AdminCatalogController) CreateTopic(ctx *gin.Context) {
	var req dto.CreateTopicRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.catalogService.CreateTopic(req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateTopic", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// DeleteTopic godoc
// @Summary (Admin) Delete a topic with its questions and answers
// @Tags Admin - Catalog
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/topics/{id} [delete]
func (c *AdminCatalogController) DeleteTopic(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.catalogService.DeleteTopic(id); err != nil {
		controller.RespondError(ctx, "Admin DeleteTopic", err)
		return
	}
	log.Info().Uint("topicID", id).Msg("Topic deleted")
	ctx.Status(http.StatusNoContent)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question with its answers
// @Description Exactly one answer must be flagged as correct.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question with 2 to 6 answers"
// @Success 201 {object} dto.QuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /admin/questions [post]
func (c *AdminCatalogController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.catalogService.CreateQuestion(req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateExamTemplate godoc
// @Summary (Admin) Create an official exam template
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param template body dto.CreateExamTemplateRequest true "Template data"
// @Success 201 {object} dto.ExamTemplateDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /admin/exam-templates [post]
func (c *AdminCatalogController) CreateExamTemplate(ctx *gin.Context) {
	var req dto.CreateExamTemplateRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.templateService.Create(req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateExamTemplate", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreatePost godoc
// @Summary (Admin) Create a blog post
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body dto.CreatePostRequest true "Post data"
// @Success 201 {object} dto.PostDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/posts [post]
func (c *AdminCatalogController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.blogService.Create(auth.FromContext(ctx), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreatePost", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdatePost godoc
// @Summary (Admin) Update a blog post
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param post body dto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} dto.PostDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/posts/{id} [patch]
func (c *AdminCatalogController) UpdatePost(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.blogService.Update(id, req)
	if err != nil {
		controller.RespondError(ctx, "Admin UpdatePost", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
