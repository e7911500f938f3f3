package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/controller"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/service"
)

// ContentController serves exam templates and the blog.
type ContentController struct {
	templateService service.ExamTemplateService
	blogService     service.BlogService
}

func NewContentController(templateService service.ExamTemplateService, blogService service.BlogService) *ContentController {
	return &ContentController{templateService: templateService, blogService: blogService}
}

// ListExamTemplates godoc
// @Summary List active official exam templates
// @Tags Exams
// @Produce json
// @Param category query string false "Category slug"
// @Success 200 {array} dto.ExamTemplateDTO
// @Router /exam-templates [get]
func (c *ContentController) ListExamTemplates(ctx *gin.Context) {
	templates, err := c.templateService.List(ctx.Query("category"))
	if err != nil {
		controller.RespondError(ctx, "ListExamTemplates", err)
		return
	}
	ctx.JSON(http.StatusOK, templates)
}

// GetExamTemplate godoc
// @Summary Get an exam template
// @Tags Exams
// @Produce json
// @Param slug path string true "Template slug"
// @Success 200 {object} dto.ExamTemplateDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /exam-templates/{slug} [get]
func (c *ContentController) GetExamTemplate(ctx *gin.Context) {
	template, err := c.templateService.Get(ctx.Param("slug"))
	if err != nil {
		controller.RespondError(ctx, "GetExamTemplate", err)
		return
	}
	ctx.JSON(http.StatusOK, template)
}

// StartExam godoc
// @Summary Start a mock exam from a template
// @Description Draws questions from blocks 1 and 2 and opens an exam session.
// @Tags Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Template slug"
// @Param overrides body dto.StartExamRequest false "n1, n2, shuffle and minutes overrides"
// @Success 201 {object} dto.StartExamResponse
// @Failure 400 {object} dto.ErrorResponse "Not enough questions"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exam-templates/{slug}/start [post]
func (c *ContentController) StartExam(ctx *gin.Context) {
	var req dto.StartExamRequest
	if ctx.Request.ContentLength != 0 && !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.templateService.Start(auth.FromContext(ctx), ctx.Param("slug"), req)
	if err != nil {
		controller.RespondError(ctx, "StartExam", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListPosts godoc
// @Summary List published blog posts, newest first
// @Tags Blog
// @Produce json
// @Success 200 {array} dto.PostDTO
// @Router /posts [get]
func (c *ContentController) ListPosts(ctx *gin.Context) {
	posts, err := c.blogService.ListPublished()
	if err != nil {
		controller.RespondError(ctx, "ListPosts", err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a published blog post
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.PostDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /posts/{slug} [get]
func (c *ContentController) GetPost(ctx *gin.Context) {
	post, err := c.blogService.GetPublished(ctx.Param("slug"))
	if err != nil {
		controller.RespondError(ctx, "GetPost", err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

