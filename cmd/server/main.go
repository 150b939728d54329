package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/ignatzorin/campus-lostfound/internal/auth"
	"github.com/ignatzorin/campus-lostfound/internal/config"
	"github.com/ignatzorin/campus-lostfound/internal/db"
	"github.com/ignatzorin/campus-lostfound/internal/domain/repository"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
	"github.com/ignatzorin/campus-lostfound/internal/goroutine"
	httpHandlers "github.com/ignatzorin/campus-lostfound/internal/http/handlers"
	"github.com/ignatzorin/campus-lostfound/internal/http/middleware"
	httpRouter "github.com/ignatzorin/campus-lostfound/internal/http/router"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/email"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/persistence"
	"github.com/ignatzorin/campus-lostfound/internal/interface/http/handler"
	"github.com/ignatzorin/campus-lostfound/internal/logger"
	"github.com/ignatzorin/campus-lostfound/internal/notify"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/claim"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/discussion"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/founditem"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/lostreport"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/matching"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/notification"
	"github.com/ignatzorin/campus-lostfound/internal/usecase/stats"
	"github.com/ignatzorin/campus-lostfound/internal/ws"
)

type repositories struct {
	users         repository.UserRepository
	lostReports   repository.LostReportRepository
	foundItems    repository.FoundItemRepository
	claims        repository.ClaimRepository
	comments      repository.CommentRepository
	notifications repository.NotificationRepository
}

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}

	// Хранилище.
	var (
		dbConn *sqlx.DB
		repos  repositories
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Log.Warn("main: данные хранятся в памяти и пропадут при перезапуске")
		store := memory.NewStore()
		repos = repositories{
			users:         store.Users(),
			lostReports:   store.LostReports(),
			foundItems:    store.FoundItems(),
			claims:        store.Claims(),
			comments:      store.Comments(),
			notifications: store.Notifications(),
		}
	default:
		dbConn, err = db.NewPostgres(ctx, cfg.DatabaseURL, cfg.DBConnectAttempts)
		if err != nil {
			log.Fatalf("main: ошибка подключения к базе: %v", err)
		}
		defer safeClose(dbConn)

		if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
			log.Fatalf("main: ошибка миграций: %v", err)
		}

		repos = repositories{
			users:         persistence.NewUserRepository(dbConn),
			lostReports:   persistence.NewLostReportRepository(dbConn),
			foundItems:    persistence.NewFoundItemRepository(dbConn),
			claims:        persistence.NewClaimRepository(dbConn),
			comments:      persistence.NewCommentRepository(dbConn),
			notifications: persistence.NewNotificationRepository(dbConn),
		}
	}

	// Redis нужен только для общего счётчика лимитов.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("main: некорректный REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Log.WithError(err).Warn("main: ошибка закрытия redis")
			}
		}()
	}

	limitStore, err := middleware.NewRateLimitStore(redisClient)
	if err != nil {
		log.Fatalf("main: ошибка инициализации лимитера: %v", err)
	}

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	// Уведомления: in-app + почта + WebSocket.
	mailer := email.NewGomailMailer(cfg.Mail)
	if !mailer.Configured() {
		logger.Log.Warn("main: MAIL_USER/MAIL_PASS не заданы, письма отправляться не будут")
	}

	hub := ws.NewHub(ctx)
	goroutine.SafeGo("ws.hub", hub.Run)

	dispatcher := notify.NewDispatcher(valueobject.ParseNotificationMode(cfg.NotificationMode), repos.notifications, mailer)
	dispatcher.SetPusher(hub)

	textFilter := discussion.NewTextFilter(cfg.SensitiveWords)

	// Use cases.
	createLostUC := lostreport.NewCreateLostReportUseCase(repos.lostReports, repos.users, dispatcher)
	getLostUC := lostreport.NewGetLostReportUseCase(repos.lostReports, repos.users)
	listMineUC := lostreport.NewListMyLostReportsUseCase(repos.lostReports)
	nearbyUC := lostreport.NewListNearbyUseCase(repos.lostReports, repos.users)
	closeUC := lostreport.NewCloseLostReportUseCase(repos.lostReports, repos.comments)
	listLostUC := lostreport.NewListLostReportsUseCase(repos.lostReports)
	moderateUC := lostreport.NewModerateLostReportUseCase(repos.lostReports, repos.comments, repos.users, dispatcher)
	matchesUC := matching.NewFindMatchesUseCase(repos.lostReports, repos.foundItems)

	createFoundUC := founditem.NewCreateFoundItemUseCase(repos.foundItems, repos.lostReports, repos.comments, repos.users, dispatcher)
	getFoundUC := founditem.NewGetFoundItemUseCase(repos.foundItems)
	browseFoundUC := founditem.NewBrowseFoundItemsUseCase(repos.foundItems)

	createClaimUC := claim.NewCreateClaimUseCase(repos.claims, repos.foundItems, repos.lostReports, repos.users, dispatcher)
	resolveClaimUC := claim.NewResolveClaimUseCase(repos.claims, repos.foundItems, repos.users, dispatcher)
	listMyClaimsUC := claim.NewListMyClaimsUseCase(repos.claims)
	listItemClaimsUC := claim.NewListFoundItemClaimsUseCase(repos.claims, repos.foundItems)
	listClaimsUC := claim.NewListClaimsUseCase(repos.claims)

	listCommentsUC := discussion.NewListCommentsUseCase(repos.comments, repos.lostReports, repos.foundItems, repos.users)
	postCommentUC := discussion.NewPostCommentUseCase(repos.comments, repos.lostReports, repos.foundItems, repos.users, textFilter, dispatcher)

	statsUC := stats.NewGetStatsUseCase(repos.lostReports, repos.foundItems, repos.claims)

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Health:     httpHandlers.NewHealthHandler(dbConn, redisClient),
		WS:         httpHandlers.NewWSHandler(hub, tokenManager, cfg.AllowedOrigins),
		LostReport: handler.NewLostReportHandler(createLostUC, getLostUC, listMineUC, nearbyUC, closeUC, matchesUC),
		FoundItem:  handler.NewFoundItemHandler(createFoundUC, getFoundUC, browseFoundUC),
		Claim:      handler.NewClaimHandler(createClaimUC, resolveClaimUC, listMyClaimsUC, listItemClaimsUC, listClaimsUC),
		Comment:    handler.NewCommentHandler(listCommentsUC, postCommentUC),
		Notification: handler.NewNotificationHandler(
			notification.NewListNotificationsUseCase(repos.notifications),
			notification.NewCountUnreadUseCase(repos.notifications),
			notification.NewMarkReadUseCase(repos.notifications),
			notification.NewMarkAllReadUseCase(repos.notifications),
		),
		Admin: handler.NewAdminHandler(statsUC, listLostUC, moderateUC),
	}
	if cfg.Env == "development" {
		handlers.Seed = httpHandlers.NewSeedHandler(repos.users, tokenManager)
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, handlers, tokenManager, limitStore)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo("http.shutdown", func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	})

	logger.Log.WithField("port", cfg.HTTPPort).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Log.WithError(err).Error("main: ошибка закрытия базы")
	}
}
