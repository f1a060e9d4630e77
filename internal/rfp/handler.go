package rfp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rfp-backend/internal/analysis"
	"rfp-backend/internal/llm"
	"rfp-backend/internal/shared/server/middleware"
	"rfp-backend/internal/shared/server/respond"
	"rfp-backend/internal/shared/telemetry"
	"rfp-backend/internal/upload"
)

// maxRequestBytes leaves headroom over the document ceiling for multipart
// framing; the document itself is still capped at upload.MaxUploadBytes.
const maxRequestBytes = upload.MaxUploadBytes + 1<<20

// maxReplyEcho caps how much of an unparseable model reply is echoed back
// in error details.
const maxReplyEcho = 2000

// Handler wires HTTP handlers to the pipeline service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rfp/analyses", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	analysisID := uuid.NewString()
	c.Set("analysisId", analysisID)
	telemetry.Info("rfp.analyze.start", map[string]any{
		"analysis_id": analysisID,
		"file_name":   fileHeader.Filename,
		"size_bytes":  fileHeader.Size,
		"request_id":  middleware.RequestIDFromContext(c),
	})

	out, err := h.Svc.Process(c.Request.Context(), file, fileHeader.Size, fileHeader.Filename)
	if err != nil {
		h.respondError(c, analysisID, err)
		return
	}

	telemetry.Info("rfp.analyze.complete", map[string]any{
		"analysis_id":    analysisID,
		"file_name":      out.Info.FileName,
		"page_count":     out.Info.PageCount,
		"report_bytes":   out.Report.Len(),
		"workbook_bytes": out.Workbook.Len(),
		"request_id":     middleware.RequestIDFromContext(c),
	})

	respond.OK(c, toResponse(analysisID, out))
}

func (h *Handler) respondError(c *gin.Context, analysisID string, err error) {
	telemetry.Error("rfp.analyze.failed", map[string]any{
		"analysis_id": analysisID,
		"err":         err.Error(),
		"request_id":  middleware.RequestIDFromContext(c),
	})

	var parseErr *analysis.ParseError
	var missingErr *analysis.MissingKeysError

	switch {
	case errors.Is(err, upload.ErrRejected):
		respond.Error(c, http.StatusBadRequest, analysis.ErrorCodeValidation, err.Error(), nil)
	case errors.Is(err, llm.ErrTimeout):
		respond.Error(c, http.StatusGatewayTimeout, analysis.ErrorCodeLLMTimeout, "analysis timed out, please try again", nil)
	case errors.As(err, &parseErr):
		respond.Error(c, http.StatusBadGateway, analysis.ErrorCodeSchemaMismatch, err.Error(), gin.H{
			"reply": truncate(parseErr.Raw, maxReplyEcho),
		})
	case errors.As(err, &missingErr):
		respond.Error(c, http.StatusBadGateway, analysis.ErrorCodeSchemaMismatch, err.Error(), gin.H{
			"missingKeys": missingErr.Keys,
		})
	case errors.Is(err, ErrAnalyze):
		respond.Error(c, http.StatusBadGateway, analysis.ErrorCodeLLMTransport, err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, analysis.ErrorCodeInternal, "failed to generate analysis", nil)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
