package main

import (
	"github.com/gin-gonic/gin"
	"github.com/opostest/backend/config"
	adminctrl "github.com/opostest/backend/internal/controller/admin"
	userctrl "github.com/opostest/backend/internal/controller/user"
	"github.com/opostest/backend/internal/auth"
)

func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	mw *auth.Middleware,
	catalogCtrl *userctrl.CatalogController,
	sessionCtrl *userctrl.SessionController,
	accountCtrl *userctrl.AccountController,
	contentCtrl *userctrl.ContentController,
	adminCatalogCtrl *adminctrl.AdminCatalogController,
	importCtrl *adminctrl.ImportController,
) {
	api := router.Group("/api/v1")

	public := api.Group("", mw.Optional())
	{
		public.GET("/categories", catalogCtrl.ListCategories)
		public.GET("/categories/:slug", catalogCtrl.GetCategory)
		public.GET("/blocks", catalogCtrl.ListBlocks)
		public.GET("/topics", catalogCtrl.ListTopics)
		public.GET("/topics/:slug", catalogCtrl.GetTopic)
		public.GET("/topics/:slug/questions", catalogCtrl.TopicQuestions)
		public.POST("/questions/details", catalogCtrl.QuestionDetails)
		public.GET("/questions/demo", catalogCtrl.DemoQuestions)

		public.GET("/exam-templates", contentCtrl.ListExamTemplates)
		public.GET("/exam-templates/:slug", contentCtrl.GetExamTemplate)
		public.GET("/posts", contentCtrl.ListPosts)
		public.GET("/posts/:slug", contentCtrl.GetPost)
		public.GET("/ranking/weekly", sessionCtrl.WeeklyRanking)

		public.POST("/auth/register", accountCtrl.Register)
		public.POST("/auth/verify", accountCtrl.VerifyEmail)
		public.POST("/auth/login", accountCtrl.Login)
		public.POST("/auth/password-reset", accountCtrl.RequestPasswordReset)
		public.POST("/auth/password-reset/confirm", accountCtrl.ConfirmPasswordReset)
		public.POST("/contact", accountCtrl.Contact)
	}

	// Stripe signs the raw body; no auth middleware.
	api.POST("/billing/webhook", accountCtrl.StripeWebhook)
	api.POST("/exams/import", mw.StaffOrImportKey(cfg.ImportKey), importCtrl.ImportExam)

	private := api.Group("", mw.Required())
	{
		private.GET("/auth/me", accountCtrl.Me)
		private.POST("/billing/checkout", accountCtrl.Checkout)

		private.POST("/questions/review", catalogCtrl.ReviewQuestions)
		private.GET("/questions/:id/explanation", catalogCtrl.ExplainQuestion)

		private.POST("/sessions", sessionCtrl.CreateSession)
		private.GET("/sessions", sessionCtrl.ListSessions)
		private.GET("/sessions/:id", sessionCtrl.GetSession)
		private.PATCH("/sessions/:id", sessionCtrl.UpdateSession)
		private.POST("/sessions/:id/complete", sessionCtrl.CompleteSession)

		private.GET("/results", sessionCtrl.ListResults)
		private.POST("/results", sessionCtrl.CreateResult)
		private.GET("/stats", sessionCtrl.Stats)
		private.GET("/stats/reinforcement", sessionCtrl.Reinforcement)

		private.POST("/exam-templates/:slug/start", contentCtrl.StartExam)
	}

	admin := api.Group("/admin", mw.Staff())
	{
		admin.POST("/categories", adminCatalogCtrl.CreateCategory)
		admin.POST("/blocks", adminCatalogCtrl.CreateBlock)
		admin.POST("/topics", adminCatalogCtrl.CreateTopic)
		admin.DELETE("/topics/:id", adminCatalogCtrl.DeleteTopic)
		admin.POST("/questions", adminCatalogCtrl.CreateQuestion)
		admin.POST("/exam-templates", adminCatalogCtrl.CreateExamTemplate)
		admin.POST("/posts", adminCatalogCtrl.CreatePost)
		admin.PATCH("/posts/:id", adminCatalogCtrl.UpdatePost)
	}
}
