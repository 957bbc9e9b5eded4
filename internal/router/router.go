package router

import (
	"shortener-be/internal/controllers"
	"shortener-be/internal/metrics"
	"shortener-be/internal/middleware"
	"shortener-be/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the collaborators the HTTP layer needs
type Deps struct {
	URLService service.URLService
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
	BaseURL    string
}

// SetupRouter registers every route on a new gin engine
func SetupRouter(d Deps) *gin.Engine {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logging(log),
	)
	if d.Metrics != nil {
		router.Use(middleware.Metrics(d.Metrics))
	}

	shortenerController := controllers.NewShortenerController(d.URLService, log)
	qrcodeController := controllers.NewQRCodeController(d.URLService, d.BaseURL, log)

	router.GET("/health", shortenerController.Health)
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	api := router.Group("/api")
	{
		api.POST("/shorten", shortenerController.CreateShortURL)
		api.GET("/urls", shortenerController.ListURLs)
		api.GET("/qrcode/:short_code", qrcodeController.GenerateQRCode)
	}

	router.GET("/r/:short_code", shortenerController.RedirectToURL)
	router.GET("/:short_code", shortenerController.RedirectToURL)

	return router
}
