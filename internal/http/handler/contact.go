package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"taskletix.app/intake/internal/http/dto"
	"taskletix.app/intake/internal/service"
)

const maxBodyBytes = 1 << 20

type ContactHandler struct {
	contactService service.ContactService
	schema         *jsonschema.Schema
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	return &ContactHandler{
		contactService: contactService,
		schema:         reflector.Reflect(&dto.ContactRequest{}),
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := decodeObject(c)
	if err != nil {
		slog.WarnContext(ctx, "invalid contact request body", "error", err)
		c.JSON(http.StatusBadRequest, dto.Error("Invalid JSON"))
		return
	}

	if _, err := h.contactService.Submit(ctx, raw); err != nil {
		var missing *service.MissingFieldsError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, dto.Error(missingFieldsMessage(missing)))
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, dto.Error("Please enter a valid Gmail address"))
		default:
			slog.ErrorContext(ctx, "failed to save contact submission", "error", err)
			c.JSON(http.StatusInternalServerError, dto.Error("Database error"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ContactResponse{OK: true, Message: "Submission saved"})
}

// Schema serves the JSON Schema of the contact payload for form builders.
func (h *ContactHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, h.schema)
}

func missingFieldsMessage(err *service.MissingFieldsError) string {
	return "Missing required fields: " + strings.Join(err.Fields, ", ")
}

// decodeObject reads the request body as a JSON object. A literal null is
// treated as an empty object; any other non-object document is rejected.
func decodeObject(c *gin.Context) (map[string]any, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}

	switch v := doc.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, service.ErrMalformedRequest
	}
}
