package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
// A single connection keeps every query on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

type catalogFixture struct {
	Category model.ExamCategory
	Block1   model.Block
	Block2   model.Block
}

func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()
	f := catalogFixture{Category: model.ExamCategory{Name: "Auxiliar Administrativo", Slug: "auxiliar-administrativo"}}
	require.NoError(t, db.Create(&f.Category).Error)
	f.Block1 = model.Block{CategoryID: f.Category.ID, Number: 1, Name: "Bloque 1"}
	f.Block2 = model.Block{CategoryID: f.Category.ID, Number: 2, Name: "Bloque 2"}
	require.NoError(t, db.Create(&f.Block1).Error)
	require.NoError(t, db.Create(&f.Block2).Error)
	return f
}

func seedTopic(t *testing.T, db *gorm.DB, blockID uint, number int, premium bool) model.Topic {
	t.Helper()
	topic := model.Topic{
		BlockID:      blockID,
		Number:       number,
		OfficialName: fmt.Sprintf("Tema %d", number),
		Slug:         fmt.Sprintf("tema-%d-%d", blockID, number),
		Premium:      premium,
	}
	require.NoError(t, db.Create(&topic).Error)
	return topic
}

// seedQuestions adds n questions with four answers each; the first answer is correct.
func seedQuestions(t *testing.T, db *gorm.DB, topicID uint, n int) []model.Question {
	t.Helper()
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		q := model.Question{TopicID: topicID, Text: fmt.Sprintf("Pregunta %d-%d", topicID, i+1)}
		for j, letter := range []string{"A", "B", "C", "D"} {
			q.Answers = append(q.Answers, model.Answer{Text: "Opción " + letter, IsCorrect: j == 0})
		}
		require.NoError(t, db.Omit("Topic").Create(&q).Error)
		questions = append(questions, q)
	}
	return questions
}

func seedUser(t *testing.T, db *gorm.DB, username string) model.User {
	t.Helper()
	user := model.User{Username: username, Email: username + "@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Omit("Subscription").Create(&user).Error)
	return user
}

func seedResult(t *testing.T, db *gorm.DB, userID, topicID uint, correct, total int, takenAt time.Time) {
	t.Helper()
	r := model.Result{UserID: userID, TopicID: topicID, Correct: correct, Total: total, TakenAt: takenAt}
	require.NoError(t, db.Omit("User", "Topic").Create(&r).Error)
}

func identityFor(user model.User) *auth.Identity {
	return &auth.Identity{UserID: user.ID, Username: user.Username, Email: user.Email}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
