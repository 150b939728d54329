package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/ignatzorin/campus-lostfound/internal/auth"
	"github.com/ignatzorin/campus-lostfound/internal/config"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/http/handlers"
	"github.com/ignatzorin/campus-lostfound/internal/http/middleware"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/handler"
)

// Handlers собирает все хэндлеры приложения. Seed может быть nil.
type Handlers struct {
	Health       *handlers.HealthHandler
	WS           *handlers.WSHandler
	Seed         *handlers.SeedHandler
	LostReport   *handler.LostReportHandler
	FoundItem    *handler.FoundItemHandler
	Claim        *handler.ClaimHandler
	Comment      *handler.CommentHandler
	Notification *handler.NotificationHandler
	Admin        *handler.AdminHandler
}

func SetupRouter(cfg *config.Config, h Handlers, tokenManager *auth.TokenManager, limitStore limiter.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(limitStore, cfg.RateLimitLimit, cfg.RateLimitPeriod))

	if h.Seed != nil && cfg.Env == "development" {
		api.POST("/seed", h.Seed.Seed)
	}

	api.GET("/ws", h.WS.Handle)

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.POST("/lost", h.LostReport.CreateLostReport)
		protected.GET("/lost/mine", h.LostReport.ListMine)
		protected.GET("/lost/nearby", h.LostReport.ListNearby)
		protected.GET("/lost/:id", middleware.UUIDValidator("id"), h.LostReport.GetLostReport)
		protected.GET("/lost/:id/matches", middleware.UUIDValidator("id"), h.LostReport.GetMatches)
		protected.POST("/lost/:id/close", middleware.UUIDValidator("id"), h.LostReport.CloseLostReport)

		protected.GET("/found", h.FoundItem.Browse)
		protected.GET("/found/:id", middleware.UUIDValidator("id"), h.FoundItem.GetFoundItem)
		protected.POST("/found", h.FoundItem.CreateFoundItem)

		protected.POST("/claims", h.Claim.CreateClaim)
		protected.GET("/claims/mine", h.Claim.ListMine)

		protected.GET("/comments/:itemType/:itemId", middleware.UUIDValidator("itemId"), h.Comment.ListComments)
		protected.POST("/comments/:itemType/:itemId", middleware.UUIDValidator("itemId"), h.Comment.PostComment)

		protected.GET("/notifications", h.Notification.ListNotifications)
		protected.GET("/notifications/unread/count", h.Notification.CountUnread)
		protected.PUT("/notifications/read-all", h.Notification.MarkAllAsRead)
		protected.PUT("/notifications/:id/read", middleware.UUIDValidator("id"), h.Notification.MarkAsRead)
	}

	// Маршруты сотрудников
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokenManager))
	admin.Use(middleware.RequireRole(valueobject.RoleStaff, valueobject.RoleAdmin))
	{
		admin.GET("/stats", h.Admin.Stats)
		admin.GET("/lost", h.Admin.ListLostReports)
		admin.PATCH("/lost/:id", middleware.UUIDValidator("id"), h.Admin.ModerateLostReport)

		admin.GET("/claims", h.Claim.List)
		admin.GET("/claims/found/:foundItemId", middleware.UUIDValidator("foundItemId"), h.Claim.ListByFoundItem)
		admin.PATCH("/claims/:id", middleware.UUIDValidator("id"), h.Claim.ResolveClaim)
	}

	return r
}
