package routes

import (
	"lunch-roulette-api/handlers"
	"lunch-roulette-api/middleware"
	"lunch-roulette-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// UI vocabulary (no auth needed)
		public.GET("/moods", handlers.GetMoods)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Recommendation pipeline
		auth.POST("/recommend", handlers.Recommend)
		auth.POST("/recommend/spin", handlers.Spin)

		// Meal history (the scorer's recency signal)
		auth.POST("/meals", handlers.LogMeal)
		auth.GET("/meals", handlers.GetMyMeals)
		auth.DELETE("/meals/:id", handlers.DeleteMeal)

		// Favorites
		auth.POST("/favorites", handlers.AddFavorite)
		auth.GET("/favorites", handlers.GetMyFavorites)
		auth.DELETE("/favorites/:id", handlers.DeleteFavorite)
		auth.POST("/favorites/recommend", handlers.RecommendFromFavorites)

		// Teams & group votes
		auth.POST("/teams", handlers.CreateTeam)
		auth.POST("/teams/join", handlers.JoinTeam)
		auth.GET("/teams", handlers.GetMyTeams)
		auth.GET("/teams/:id", handlers.GetTeam)
		auth.POST("/teams/:id/votes", handlers.StartVoteSession)
		auth.GET("/votes/:id", handlers.GetVoteSession)
		auth.PUT("/votes/:id/start", handlers.OpenVoting)
		auth.POST("/votes/:id/cast", handlers.CastVote)
		auth.PUT("/votes/:id/close", handlers.CloseVoteSession)
		auth.PUT("/votes/:id/cancel", handlers.CancelVoteSession)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/stats", handlers.AdminGetStats)
	}
}
