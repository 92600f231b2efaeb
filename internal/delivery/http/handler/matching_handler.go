package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchingHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchingHandler(uc usecase.MatchingUsecase) *MatchingHandler {
	return &MatchingHandler{uc: uc}
}

func (h *MatchingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matching")
	grp.Get("/stats", h.Stats)
	grp.Get("/match/:projectId", h.Match)
	grp.Get("/match/:projectId/detailed", h.MatchDetailed)
}

func (h *MatchingHandler) Match(c fiber.Ctx) error {
	projectID, err := parseID(c, "projectId", "Project not found")
	if err != nil {
		return err
	}

	matches, err := h.uc.MatchProject(c.Context(), projectID)
	if err != nil {
		return mapCatalogError(err, projectID.String())
	}
	return response.Success(c, fiber.StatusOK, dto.NewMatchListResponse(projectID, matches))
}

func (h *MatchingHandler) MatchDetailed(c fiber.Ctx) error {
	projectID, err := parseID(c, "projectId", "Project not found")
	if err != nil {
		return err
	}

	matches, err := h.uc.MatchProjectDetailed(c.Context(), projectID)
	if err != nil {
		return mapCatalogError(err, projectID.String())
	}
	return response.Success(c, fiber.StatusOK, dto.NewDetailedMatchListResponse(projectID, matches))
}

func (h *MatchingHandler) Stats(c fiber.Ctx) error {
	stats, err := h.uc.MatchStats(c.Context())
	if err != nil {
		return mapCatalogError(err, "")
	}
	return response.Success(c, fiber.StatusOK, dto.NewMatchStatsResponse(stats))
}
