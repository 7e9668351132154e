package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/places-directory/internal/config"
	"github.com/places-directory/internal/delivery/http/handler"
	"github.com/places-directory/internal/delivery/http/middleware"
	"github.com/places-directory/internal/pkg/errors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	languageHandler      *handler.LanguageHandler
	categoryHandler      *handler.CategoryHandler
	placeHandler         *handler.PlaceHandler
	filterOptionsHandler *handler.FilterOptionsHandler
	wheelSpinHandler     *handler.WheelSpinHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	languageHandler *handler.LanguageHandler,
	categoryHandler *handler.CategoryHandler,
	placeHandler *handler.PlaceHandler,
	filterOptionsHandler *handler.FilterOptionsHandler,
	wheelSpinHandler *handler.WheelSpinHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Places Directory API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                  app,
		config:               cfg,
		logger:               logger,
		languageHandler:      languageHandler,
		categoryHandler:      categoryHandler,
		placeHandler:         placeHandler,
		filterOptionsHandler: filterOptionsHandler,
		wheelSpinHandler:     wheelSpinHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.Language(s.config.I18n.SupportedLanguages, s.config.I18n.DefaultLanguage))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Reference data
	s.app.Get("/languages/", s.languageHandler.List)
	s.app.Get("/languages/:code/", s.languageHandler.Get)
	s.app.Get("/categories/", s.categoryHandler.List)
	s.app.Get("/categories/:id/", s.categoryHandler.Get)
	s.app.Get("/filter-options/", s.filterOptionsHandler.Get)

	// Places
	s.app.Get("/places/", s.placeHandler.List)
	s.app.Get("/places/:id/", s.placeHandler.Get)
	s.app.Post("/places/:id/like/", s.placeHandler.Like)

	// Wheel spin
	s.app.Post("/wheel-spin/", s.wheelSpinHandler.Spin)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errors.ErrInternalServer.Code,
				"message": err.Error(),
			},
		})
	}
}
