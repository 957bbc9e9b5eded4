package controllers

import (
	"bytes"
	"errors"
	"net/http"

	"shortener-be/internal/models"
	"shortener-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	msgInternalError = "Internal server error"
	msgNotFound      = "Not found"
	msgExhausted     = "Could not generate unique short code"
)

type ShortenerController struct {
	urlService service.URLService
	log        *zap.Logger
}

func NewShortenerController(urlService service.URLService, log *zap.Logger) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
		log:        log,
	}
}

// CreateShortURL handles POST /api/shorten
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	longURL, err := decodeShortenRequest(c)
	if err != nil {
		// an unreadable body is a server-side failure, not a validation error
		sc.log.Warn("failed to decode shorten request", zap.Error(err), requestIDField(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternalError})
		return
	}

	shortCode, err := sc.urlService.Shorten(c.Request.Context(), longURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrURLRequired):
			sc.log.Info("rejected shorten request", zap.Error(err), requestIDField(c))
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrExhaustedRetries):
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgExhausted})
		default:
			sc.log.Error("failed to shorten url", zap.Error(err), requestIDField(c))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternalError})
		}
		return
	}

	c.JSON(http.StatusCreated, models.ShortenResponse{ShortCode: shortCode})
}

// RedirectToURL handles GET /r/:short_code and GET /:short_code
func (sc *ShortenerController) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("short_code")

	longURL, found, err := sc.urlService.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		sc.log.Error("failed to resolve short code",
			zap.String("short_code", shortCode),
			zap.Error(err),
			requestIDField(c),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternalError})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: msgNotFound})
		return
	}

	c.Redirect(http.StatusFound, longURL)
}

// ListURLs handles GET /api/urls
func (sc *ShortenerController) ListURLs(c *gin.Context) {
	urls, err := sc.urlService.ListURLs(c.Request.Context())
	if err != nil {
		sc.log.Error("failed to list urls", zap.Error(err), requestIDField(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternalError})
		return
	}

	response := make([]models.URLResponse, 0, len(urls))
	for _, u := range urls {
		response = append(response, models.NewURLResponse(u))
	}

	c.JSON(http.StatusOK, response)
}

// Health handles GET /health. It never consults the store.
func (sc *ShortenerController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

var errNullBody = errors.New("request body is null")

// decodeShortenRequest requires the body to be a JSON object. A null body
// would otherwise bind as an empty request.
func decodeShortenRequest(c *gin.Context) (string, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return "", err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", errNullBody
	}

	var req models.ShortenRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		return "", err
	}
	return req.LongURL()
}

func requestIDField(c *gin.Context) zap.Field {
	return zap.String("request_id", c.GetString("request_id"))
}
