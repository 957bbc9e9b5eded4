package controllers

import (
	"net/http"
	"strings"

	"shortener-be/internal/models"
	"shortener-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrCodeSize = 256

type QRCodeController struct {
	urlService service.URLService
	baseURL    string
	log        *zap.Logger
}

// NewQRCodeController builds the controller. An empty baseURL means the
// short link is derived from the incoming request.
func NewQRCodeController(urlService service.URLService, baseURL string, log *zap.Logger) *QRCodeController {
	return &QRCodeController{
		urlService: urlService,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// GenerateQRCode handles GET /api/qrcode/:short_code - PNG of the short link
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	shortCode := c.Param("short_code")

	_, found, err := qc.urlService.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		qc.log.Error("failed to resolve short code for qr code",
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

	shortURL := qc.shortLinkBase(c) + "/" + shortCode

	// Generate QR code (256x256 pixels, medium error recovery)
	pngData, err := qrcode.Encode(shortURL, qrcode.Medium, qrCodeSize)
	if err != nil {
		qc.log.Error("failed to encode qr code", zap.String("short_url", shortURL), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternalError})
		return
	}

	c.Header("Content-Disposition", "inline; filename="+shortCode+".png")
	c.Data(http.StatusOK, "image/png", pngData)
}

func (qc *QRCodeController) shortLinkBase(c *gin.Context) string {
	if qc.baseURL != "" {
		return qc.baseURL
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
