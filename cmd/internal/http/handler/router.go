package handler

import (
	"net/http"
	"simpleblog/cmd/internal/config"
	"simpleblog/cmd/internal/domain/policy"
	"simpleblog/cmd/internal/domain/sqlite/repository"
	blogmw "simpleblog/cmd/internal/http/middleware"
	"simpleblog/cmd/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers over db.
func NewRouter(db *gorm.DB, cfg *config.Config) *echo.Echo {
	validate := validator.New()

	// Repositories
	noteRepo := repository.NewNoteRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	verifier := service.NewCredentialVerifier(userRepo)
	noteService := service.NewNoteService(noteRepo, verifier, policy.NewNotePolicy(), validate)
	commentService := service.NewCommentService(commentRepo, validate)
	userService := service.NewUserService(userRepo, validate)

	// Handlers
	noteRoutes := NewNoteDefault(noteService)
	commentRoutes := NewCommentDefault(commentService)
	userRoutes := NewUserDefault(userService)
	pageRoutes := NewPageRoute(cfg.Server.StaticDir)

	credentials := blogmw.NewCredentialsMiddleware()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// Notes
	e.GET("/api/get_note_list", noteRoutes.GetNotes)
	e.GET("/api/get_note", noteRoutes.GetNote, credentials)
	e.POST("/api/update_note", noteRoutes.SubmitNote)

	// Comments
	e.GET("/api/get_comment", commentRoutes.GetComments)
	e.POST("/api/add_comment", commentRoutes.AddComment)

	// Users
	e.GET("/api/register_user", userRoutes.RegisterUser)

	// Browser shell
	pageRoutes.Register(e)

	e.GET("/health", healthCheckRoute)
	return e
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
