package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lambda-http-adapter/internal/middleware"
)

// ValidationError describes a single failed binding constraint
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error            string            `json:"error"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
	RequestID        string            `json:"request_id,omitempty"`
}

// EchoRequest is the payload accepted by the echo endpoint
type EchoRequest struct {
	Name  string `json:"name" binding:"required,min=1"`
	Count int    `json:"count" binding:"omitempty,gte=0,lte=100"`
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "lambda-http-adapter",
		"version": "1.0.0",
	})
}

// Echo validates the incoming payload and returns it together with the
// request ID assigned by the middleware
func Echo(c *gin.Context) {
	var req EchoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(c, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":       req.Name,
		"count":      req.Count,
		"request_id": c.GetString(middleware.RequestIDKey),
	})
}

// Greeting demonstrates path and query parameter handling
func Greeting(c *gin.Context) {
	name := c.Param("name")
	lang := c.DefaultQuery("lang", "en")

	greeting := "Hello"
	if lang == "es" {
		greeting = "Hola"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s, %s!", greeting, name),
		"lang":    lang,
	})
}

// pixelPNG is a 1x1 transparent PNG used to exercise binary responses.
var pixelPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

// Pixel serves a tiny image so binary base64 encoding can be verified end to
// end through the adapter
func Pixel(c *gin.Context) {
	c.Data(http.StatusOK, "image/png", pixelPNG)
}

// bindErrorResponse formats binding failures, expanding validator errors
// into per-field details
func bindErrorResponse(c *gin.Context, err error) ErrorResponse {
	resp := ErrorResponse{
		Error:     "Invalid request format",
		RequestID: c.GetString(middleware.RequestIDKey),
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.ValidationErrors = append(resp.ValidationErrors, ValidationError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: fmt.Sprintf("failed on the '%s' constraint", fe.Tag()),
			})
		}
	}
	return resp
}
