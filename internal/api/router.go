package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskforge/taskboard/docs"
	"github.com/taskforge/taskboard/internal/api/handler"
	custommw "github.com/taskforge/taskboard/internal/api/middleware"
	"github.com/taskforge/taskboard/internal/core/service"
	"github.com/taskforge/taskboard/internal/infrastructure/config"
	mongodb "github.com/taskforge/taskboard/internal/infrastructure/db/mongo"
	redisdb "github.com/taskforge/taskboard/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	sessions := redisdb.NewSessionStore(rdb)

	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	authService := service.NewAuthService(userRepo, sessions, cfg.SessionSecret, cfg.SessionTTL, log)
	taskService := service.NewTaskService(taskRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService, categoryService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("taskboard"))
	e.Use(custommw.Session(cfg.SessionSecret, sessions))

	requireSession := custommw.RequireSession()

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/profile/:username", authHandler.Profile, requireSession)
	e.POST("/profile/:username", authHandler.Profile, requireSession)

	// --- Task routes (listing is public, every mutation path is guarded) ---
	e.GET("/", taskHandler.List)
	e.GET("/get_task", taskHandler.List)
	e.GET("/add_task", taskHandler.NewForm, requireSession)
	e.POST("/add_task", taskHandler.Create, requireSession)
	e.GET("/edit_task/:task_id", taskHandler.EditForm, requireSession)
	e.POST("/edit_task/:task_id", taskHandler.Update, requireSession)
	e.GET("/delete_task/:task_id", taskHandler.Delete, requireSession)

	// --- Category routes (no delete; edit is guarded like every mutation) ---
	e.GET("/get_category", categoryHandler.List)
	e.GET("/add_category", categoryHandler.NewForm, requireSession)
	e.POST("/add_category", categoryHandler.Create, requireSession)
	e.GET("/edit_category/:category_id", categoryHandler.EditForm, requireSession)
	e.POST("/edit_category/:category_id", categoryHandler.Update, requireSession)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
