package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	projects := r.Group("/projects")
	projects.Get("/", h.ListProjects)
	projects.Get("/:id", h.GetProject)

	employees := r.Group("/employees")
	employees.Get("/", h.ListEmployees)
	employees.Get("/:id", h.GetEmployee)
}

func (h *CatalogHandler) ListProjects(c fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context())
	if err != nil {
		return mapCatalogError(err, "")
	}
	return response.Success(c, fiber.StatusOK, dto.NewProjectListResponse(items))
}

func (h *CatalogHandler) GetProject(c fiber.Ctx) error {
	id, err := parseID(c, "id", "Project not found")
	if err != nil {
		return err
	}

	p, err := h.uc.GetProject(c.Context(), id)
	if err != nil {
		return mapCatalogError(err, id.String())
	}
	return response.Success(c, fiber.StatusOK, dto.NewProjectResponse(p))
}

func (h *CatalogHandler) ListEmployees(c fiber.Ctx) error {
	items, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return mapCatalogError(err, "")
	}
	return response.Success(c, fiber.StatusOK, dto.NewEmployeeListResponse(items))
}

func (h *CatalogHandler) GetEmployee(c fiber.Ctx) error {
	id, err := parseID(c, "id", "Employee not found")
	if err != nil {
		return err
	}

	e, err := h.uc.GetEmployee(c.Context(), id)
	if err != nil {
		return mapCatalogError(err, id.String())
	}
	return response.Success(c, fiber.StatusOK, dto.NewEmployeeResponse(e))
}
