// Package server wires repositories, services and handlers into the gin
// engine that serves the JSON API.
package server

import (
	"net/http"

	"exlibris/internal/config"
	"exlibris/internal/media"
	"exlibris/internal/microservices/http-api/handler"
	"exlibris/internal/microservices/http-api/middleware"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/internal/microservices/http-api/service"
	"exlibris/pkg/cache"
	"exlibris/pkg/metrics"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Services is everything the router needs. Tests fill it with mocks.
type Services struct {
	Tokens     service.TokenService
	Context    service.ContextService
	Home       service.HomeService
	Books      service.BookService
	Audiobooks service.AudiobookService
	Forum      service.ForumService
	Quiz       service.QuizService
	Statuses   service.StatusService
	Profiles   service.ProfileService
	Challenges service.ChallengeService
}

// NewServices builds the production services on top of gorm repositories.
func NewServices(db *gorm.DB, c cache.Cache, cfg *config.Config) Services {
	books := repository.NewBookRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	users := service.NewUserService(repository.NewUserRepository(db))

	bookSvc := service.NewBookService(books)
	audiobookSvc := service.NewAudiobookService(repository.NewAudiobookRepository(db))
	forumSvc := service.NewForumService(repository.NewForumRepository(db), challengeRepo, users)
	challengeSvc := service.NewChallengeService(challengeRepo)
	statusSvc := service.NewStatusService(statusRepo, books, users)

	return Services{
		Tokens:     service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry),
		Context:    service.NewContextService(repository.NewCatalogRepository(db), c, cfg.CacheTTLDuration(), cfg.MediaURL),
		Home:       service.NewHomeService(bookSvc, audiobookSvc, forumSvc, challengeSvc, statusSvc),
		Books:      bookSvc,
		Audiobooks: audiobookSvc,
		Forum:      forumSvc,
		Quiz:       service.NewQuizService(repository.NewQuizRepository(db), books),
		Statuses:   statusSvc,
		Profiles:   service.NewProfileService(repository.NewProfileRepository(db), statusRepo, challengeRepo, users),
		Challenges: challengeSvc,
	}
}

// Options holds the transport settings of the router.
type Options struct {
	MediaURL    string
	CORSOrigins []string
	Limiter     *middleware.RateLimiter
	Health      func() error
}

func NewRouter(svc Services, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(opts.CORSOrigins),
		metrics.Middleware(),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
	})

	r.GET("/check-conn", func(c *gin.Context) {
		if opts.Health != nil {
			if err := opts.Health(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})
	r.GET("/metrics", metrics.Handler())

	m := media.NewResolver(opts.MediaURL)
	site := handler.NewSiteHandler(svc.Home, svc.Context, svc.Challenges, m)
	books := handler.NewBookHandler(svc.Books, svc.Statuses, m)
	audiobooks := handler.NewAudiobookHandler(svc.Audiobooks, m)
	forum := handler.NewForumHandler(svc.Forum)
	quiz := handler.NewQuizHandler(svc.Quiz, m)
	statuses := handler.NewStatusHandler(svc.Statuses, m)
	profiles := handler.NewProfileHandler(svc.Profiles, m)

	// writes need a caller and are throttled per caller
	write := []gin.HandlerFunc{middleware.RequireAuth()}
	if opts.Limiter != nil {
		write = append(write, middleware.RateLimit(opts.Limiter))
	}
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, write...), h)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(svc.Tokens))
	{
		api.GET("/context", site.Context)
		api.GET("/home", site.Home)
		api.GET("/challenge", site.Challenge)

		books.RegisterRoutes(api.Group("/books"))
		audiobooks.RegisterRoutes(api.Group("/audiobooks"))
		forum.RegisterRoutes(api.Group("/forum"), write...)

		api.GET("/quiz", quiz.Questions)
		api.POST("/submit-quiz", guarded(quiz.Submit)...)
		api.POST("/update-book-status", guarded(statuses.Update)...)
		api.POST("/remove-bookmark", guarded(statuses.Remove)...)

		api.GET("/bookmarks", middleware.RequireAuth(), statuses.Bookmarks)
		api.GET("/profile", middleware.RequireAuth(), profiles.Get)
	}

	return r
}
