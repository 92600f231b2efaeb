package handler

import (
	"errors"
	"io"
	"strings"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/analysis"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	documentFailedMessage = "Document analysis failed"
	teamFailedMessage     = "Team analysis failed"
)

type AnalysisHandler struct {
	uc       usecase.AnalysisUsecase
	maxBytes int64
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase, maxBytes int64) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, maxBytes: maxBytes}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/api")
	grp.Post("/analyze-document", h.AnalyzeDocument)
	grp.Post("/analyze-team", h.AnalyzeTeam)
}

func (h *AnalysisHandler) AnalyzeDocument(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "file is required", err)
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return mapAnalysisError(usecase.ErrDocumentTooLarge, documentFailedMessage)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "file could not be read", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "file could not be read", err)
	}

	out, err := h.uc.AnalyzeDocument(c.Context(), analysis.Document{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return mapAnalysisError(err, documentFailedMessage)
	}
	return response.Success(c, fiber.StatusOK, out)
}

func (h *AnalysisHandler) AnalyzeTeam(c fiber.Ctx) error {
	var req dto.TeamAnalysisRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "request body must be JSON with a prompt", err)
	}

	in := usecase.TeamAnalysisInput{Prompt: req.Prompt}
	if raw := strings.TrimSpace(req.ProjectID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "project_id must be a UUID", errors.Join(usecase.ErrInvalidInput, err))
		}
		in.ProjectID = &id
	}

	out, err := h.uc.AnalyzeTeam(c.Context(), in)
	if err != nil {
		return mapAnalysisError(err, teamFailedMessage)
	}
	return response.Success(c, fiber.StatusOK, out)
}
