package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskletix.app/intake/internal/http/dto"
	"taskletix.app/intake/internal/report"
	"taskletix.app/intake/internal/service"
)

type AdminHandler struct {
	authService       service.AdminAuthService
	submissionService service.SubmissionService
}

func NewAdminHandler(authService service.AdminAuthService, submissionService service.SubmissionService) *AdminHandler {
	return &AdminHandler{
		authService:       authService,
		submissionService: submissionService,
	}
}

// Login exchanges the shared admin password for a bearer token. A missing or
// unparseable body is treated as an empty password.
func (h *AdminHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := decodeObject(c)
	if err != nil {
		raw = map[string]any{}
	}
	password, _ := raw["password"].(string)

	token, err := h.authService.Login(ctx, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPassword):
			c.JSON(http.StatusBadRequest, dto.Error("Password required"))
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.Error("Invalid credentials"))
		default:
			slog.ErrorContext(ctx, "failed to issue admin token", "error", err)
			c.JSON(http.StatusInternalServerError, dto.Error("Login failed"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{OK: true, Token: token})
}

func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	ctx := c.Request.Context()

	limit, offset := service.NormalizePage(c.DefaultQuery("limit", "200"), c.DefaultQuery("offset", "0"))

	subs, err := h.submissionService.List(ctx, limit, offset)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list submissions", "error", err)
		c.JSON(http.StatusInternalServerError, dto.Error("Database error"))
		return
	}

	c.JSON(http.StatusOK, dto.ListSubmissionsResponse{
		OK:          true,
		Submissions: dto.ToSubmissionResponses(subs),
	})
}

func (h *AdminHandler) ExportPDF(c *gin.Context) {
	ctx := c.Request.Context()

	doc, err := h.submissionService.ExportPDF(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to export submissions", "error", err)
		msg := "Failed to generate report"
		if errors.Is(err, service.ErrStorage) {
			msg = "Database error"
		}
		c.JSON(http.StatusInternalServerError, dto.Error(msg))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+report.Filename)
	c.Data(http.StatusOK, report.ContentType, doc)
}

// RequireAdmin aborts with 401 unless the request carries a bearer token
// issued by Login.
func (h *AdminHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.authService.Authorize(c.Request.Context(), c.GetHeader("Authorization")); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
			return
		}
		c.Next()
	}
}
