package handler

import (
	"errors"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// parseID treats a malformed identifier like an unknown one: no record can carry it.
func parseID(c fiber.Ctx, param, notFound string) (uuid.UUID, error) {
	raw := c.Params(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, notFound, err).WithID(raw)
	}
	return id, nil
}

func mapCatalogError(err error, id string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", err).WithID(id)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", err).WithID(id)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Project has no required skills", err).WithID(id)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

// mapAnalysisError keeps the collaborator's failure out of the response body. failed is
// the generic message shown for external-service errors.
func mapAnalysisError(err error, failed string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrDocumentTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "Document too large", err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, invalidInputMessage(err), err)
	case errors.Is(err, usecase.ErrExternalService):
		return middleware.NewAppError(fiber.StatusInternalServerError, failed, err).WithCode(response.CodeExternalService)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

// invalidInputMessage exposes validation detail only; it is produced by this service,
// never by a collaborator.
func invalidInputMessage(err error) string {
	if err == nil {
		return response.MessageBadRequest
	}
	return err.Error()
}
