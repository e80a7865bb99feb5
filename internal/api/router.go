package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bookverse/bookstore-api/docs"
	"github.com/bookverse/bookstore-api/internal/api/handler"
	"github.com/bookverse/bookstore-api/internal/api/middleware"
	"github.com/bookverse/bookstore-api/internal/core/service"
	mongodb "github.com/bookverse/bookstore-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bookverse/bookstore-api/internal/infrastructure/db/redis"
	"github.com/bookverse/bookstore-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authorRepo := mongodb.NewAuthorRepository(db)
	bookRepo := mongodb.NewBookRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessions, log)
	authorService := service.NewAuthorService(authorRepo, bookRepo, log)
	bookService := service.NewBookService(bookRepo, authorRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	authorHandler := handler.NewAuthorHandler(authorService)
	bookHandler := handler.NewBookHandler(bookService)
	requireAuth := middleware.Auth(authService)

	// --- Public routes ---
	e.GET("/welcome", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome Boss")
	})
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Authenticated user routes ---
	e.GET("/user", authHandler.Profile, requireAuth)
	e.GET("/logout", authHandler.Logout, requireAuth)

	// --- Author routes (bearer-gated) ---
	e.GET("/all-authors", authorHandler.List, requireAuth)
	e.POST("/add-author", authorHandler.Create, requireAuth)
	e.GET("/author-detail/:id", authorHandler.Get, requireAuth)
	e.PUT("/update-author/:id", authorHandler.Update, requireAuth)
	e.DELETE("/delete-author/:id", authorHandler.Delete, requireAuth)
	e.GET("/authors/search", authorHandler.Search, requireAuth)

	// --- Book routes (bearer-gated) ---
	e.GET("/books", bookHandler.List, requireAuth)
	e.POST("/add-book", bookHandler.Create, requireAuth)
	e.GET("/book-detail/:id", bookHandler.Get, requireAuth)
	e.PUT("/update-book/:id", bookHandler.Update, requireAuth)
	e.DELETE("/delete-book/:id", bookHandler.Delete, requireAuth)
	e.GET("/books/search", bookHandler.Search, requireAuth)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
