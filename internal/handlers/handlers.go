package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"gamevault/internal/config"
	"gamevault/internal/middleware"
	"gamevault/internal/models"
	"gamevault/internal/repository"
	"gamevault/internal/service"
	"gamevault/internal/storage"
)

type HandlerSet struct {
	log     zerolog.Logger
	cfg     *config.AppConfig
	auth    *service.AuthService
	catalog *service.CatalogService
	reviews *service.ReviewService
	uploads *service.UploadService
	users   service.UserStore
	db      *pgxpool.Pool
	cache   *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	auth := service.NewAuthService(userRepo, cfg, log)
	catalog := service.NewCatalogService(gameRepo, genreRepo, cache, log)
	reviews := service.NewReviewService(reviewRepo, gameRepo, cache, cfg.Jobs.RatingStream, log)

	var uploads *service.UploadService
	if store != nil {
		uploads = service.NewUploadService(store, cfg, log)
	}

	return HandlerSet{
		log:     log,
		cfg:     cfg,
		auth:    auth,
		catalog: catalog,
		reviews: reviews,
		uploads: uploads,
		users:   userRepo,
		db:      db,
		cache:   cache,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")

	authGate := middleware.Auth(h.cfg.Security.JWTSecret)

	users := v1.Group("/users")
	users.POST("/register", h.RegisterUser)
	users.POST("/login", h.Login)

	protected := v1.Group("/users")
	protected.Use(authGate)
	protected.GET("", h.ListUsers)
	protected.GET("/me", h.Me)
	protected.GET("/:id", h.GetUser)
	protected.PATCH("/:id", h.UpdateProfile)
	protected.DELETE("/:id", h.DeleteUser)
	protected.PATCH("/:id/role", middleware.RequireRoles(models.RoleAdmin), h.UpdateRole)

	games := v1.Group("/games")
	games.Use(authGate)
	games.GET("", h.ListGames)
	games.POST("", h.CreateGame)
	games.GET("/:id", h.GetGame)
	games.PATCH("/:id", h.UpdateGame)
	games.DELETE("/:id", h.DeleteGame)
	games.GET("/:id/reviews", h.ListReviews)
	games.POST("/:id/reviews", h.CreateReview)

	reviews := v1.Group("/reviews")
	reviews.Use(authGate)
	reviews.PATCH("/:id", h.UpdateReview)
	reviews.DELETE("/:id", h.DeleteReview)

	genres := v1.Group("/genres")
	genres.Use(authGate)
	genres.GET("", h.ListGenres)
	genres.POST("", h.CreateGenre)
	genres.PATCH("/:id", h.UpdateGenre)
	genres.DELETE("/:id", h.DeleteGenre)

	media := v1.Group("/media")
	media.Use(authGate)
	media.POST("/upload", h.UploadMedia)
}
