package admin

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/internal/controller"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/service"
	"github.com/rs/zerolog/log"
)

// maxImportSize bounds the uploaded CSV.
const maxImportSize = 10 << 20

type ImportController struct {
	importService service.ExamImportService
}

func NewImportController(importService service.ExamImportService) *ImportController {
	return &ImportController{importService: importService}
}

// ImportExam godoc
// @Summary Import an official exam CSV
// @Description Staff users, or callers sending the X-Import-Key header, upload a CSV with the
// @Description columns Bloque, Año, Texto_Pregunta, Opcion_A..D, Respuesta_Correcta and the
// @Description justification columns. Row errors are reported, not fatal.
// @Tags Admin - Import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param X-Import-Key header string false "Import key"
// @Param file formData file true "CSV file"
// @Param category formData string true "Category slug or name"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} dto.ErrorResponse "Missing parameters or unusable CSV"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /exams/import [post]
func (c *ImportController) ImportExam(ctx *gin.Context) {
	category := strings.TrimSpace(ctx.PostForm("category"))
	if category == "" {
		category = strings.TrimSpace(ctx.PostForm("oposicion"))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil || category == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing parameters: 'file' and 'category'"})
		return
	}
	if fileHeader.Size > maxImportSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		controller.RespondError(ctx, "ImportExam open", err)
		return
	}
	defer file.Close()
	raw, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		controller.RespondError(ctx, "ImportExam read", err)
		return
	}

	result, err := c.importService.Import(ctx.Request.Context(), category, raw)
	if err != nil {
		controller.RespondError(ctx, "ImportExam", err)
		return
	}
	log.Info().
		Str("category", result.Category.Slug).
		Str("file", fileHeader.Filename).
		Int("created", result.Created).
		Int("errors", result.Errors).
		Msg("Exam CSV imported")
	ctx.JSON(http.StatusOK, result)
}
