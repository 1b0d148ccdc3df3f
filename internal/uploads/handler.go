// Package uploads serves the resume upload endpoint. Text extraction and
// field inference are collaborator concerns; this handler only plumbs the
// file through them and normalizes the result.
package uploads

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhunter-backend/internal/extract"
	"jobhunter-backend/internal/parser"
	"jobhunter-backend/internal/profile"
	"jobhunter-backend/internal/shared/server/respond"
	"jobhunter-backend/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the parse-resume endpoint.
type Handler struct {
	Parser parser.Client
}

// NewHandler constructs a Handler.
func NewHandler(p parser.Client) *Handler {
	return &Handler{Parser: p}
}

// RegisterRoutes attaches upload routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/parse-resume", h.parseResume)
}

type parseResumeResponse struct {
	Success bool            `json:"success"`
	Data    profile.Profile `json:"data"`
	Message string          `json:"message,omitempty"`
}

func (h *Handler) parseResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !extract.Supported(mimeType, fileHeader.Filename) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File type not supported. Please upload PDF or DOCX.", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	text, err := extract.Text(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "File type not supported. Please upload PDF or DOCX.", nil)
			return
		}
		telemetry.Error("uploads.extract_failed", map[string]any{
			"file_name": fileHeader.Filename,
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "could not extract text from file", nil)
		return
	}

	raw, err := h.Parser.ParseResume(c.Request.Context(), text)
	if err != nil {
		telemetry.Error("uploads.parser_failed", map[string]any{
			"file_name": fileHeader.Filename,
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusBadGateway, "parser_unavailable", "resume parsing service is unavailable", nil)
		return
	}

	normalized, err := profile.Normalize(raw)
	if err != nil {
		if errors.Is(err, profile.ErrEmptyProfile) {
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "could not normalize resume fields", nil)
		return
	}

	respond.OK(c, parseResumeResponse{
		Success: true,
		Data:    normalized,
		Message: "Resume parsed successfully",
	})
}
