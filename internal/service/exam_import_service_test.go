package service

import (
	"context"
	"testing"

	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const officialExamCSV = "\ufeffBloque,Año,Texto_Pregunta,Opcion_A,Opción_B,Opcion_C,Opcion_D,Respuesta_Correcta,Texto_Justificacion,Articulo_Justificacion,URL_Fuente_Oficial\n" +
	"1,2023,¿Cuántos artículos tiene la Constitución?,169,170,171,172,a,Son 169 artículos,Título X,https://www.boe.es/\n" +
	"Bloque 2,2023,¿Qué es una hoja de cálculo?,Un programa,Un virus,,,A,,,\n" +
	"II,,¿Pregunta con letra inválida?,a,b,c,d,E,,,\n" +
	"1,2023,,a,b,c,d,A,,,\n" +
	"1,2023,¿Cuántos artículos tiene la Constitución?,169,170,171,172,A,,,\n" +
	"1,2022,¿Una sola opción?,sola,,,,A,,,\n"

func TestImportCreatesQuestionsAndReportsRows(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	svc := NewExamImportService(db, repository.NewCategoryRepository(db))

	result, err := svc.Import(context.Background(), "AUXILIAR ADMINISTRATIVO", []byte(officialExamCSV))
	require.NoError(t, err)

	assert.Equal(t, fx.Category.Slug, result.Category.Slug)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.CreatedBlock1)
	assert.Equal(t, 1, result.CreatedBlock2)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 2, result.Errors)
	require.Len(t, result.ErrorDetails, 2)
	assert.Equal(t, 4, result.ErrorDetails[0].Line)
	assert.Equal(t, 7, result.ErrorDetails[1].Line)

	var topic model.Topic
	require.NoError(t, db.Where("slug = ?", "auxiliar-administrativo-examen-oficial-b1").First(&topic).Error)
	assert.Equal(t, 99901, topic.Number)
	assert.True(t, topic.Premium)
	assert.Equal(t, fx.Block1.ID, topic.BlockID)

	var question model.Question
	require.NoError(t, db.Preload("Answers").Where("topic_id = ?", topic.ID).First(&question).Error)
	assert.Equal(t, "Examen oficial 2023", question.OriginalSource)
	require.Len(t, question.Answers, 4)
	correct := question.CorrectAnswer()
	require.NotNil(t, correct)
	assert.Equal(t, "169", correct.Text)
	assert.Equal(t, "Son 169 artículos", correct.JustificationText)
	for _, a := range question.Answers {
		if !a.IsCorrect {
			assert.Empty(t, a.JustificationText)
		}
	}

	var twoOptions model.Question
	require.NoError(t, db.Preload("Answers").Where("text = ?", "¿Qué es una hoja de cálculo?").First(&twoOptions).Error)
	assert.Len(t, twoOptions.Answers, 2)
}

func TestImportIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewExamImportService(db, repository.NewCategoryRepository(db))

	_, err := svc.Import(context.Background(), "auxiliar-administrativo", []byte(officialExamCSV))
	require.NoError(t, err)
	again, err := svc.Import(context.Background(), "auxiliar-administrativo", []byte(officialExamCSV))
	require.NoError(t, err)

	assert.Equal(t, 0, again.Created)
	assert.Equal(t, 4, again.Skipped)
	assert.Equal(t, 2, again.Errors)

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
	var topics int64
	require.NoError(t, db.Model(&model.Topic{}).Count(&topics).Error)
	assert.Equal(t, int64(2), topics)
}

func TestImportStructuralFailures(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := NewExamImportService(db, repository.NewCategoryRepository(db))

	_, err := svc.Import(context.Background(), "auxiliar-administrativo", []byte("Bloque,Texto_Pregunta\n1,hola\n"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "option_a")

	_, err = svc.Import(context.Background(), "no-existe", []byte(officialExamCSV))
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	assert.Zero(t, count)
}
