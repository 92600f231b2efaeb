package middleware

import (
	"errors"
	"fmt"

	"talent-match/internal/logger"
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Code       string
	Message    string
	// ID echoes the identifier a not-found error refers to.
	ID    string
	Cause error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

func (e *AppError) WithID(id string) *AppError {
	e.ID = id
	return e
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(log *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger.OrNop(log).Named("http")}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, "")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}
		return m.Handle(c, err)
	}
}

// Handle renders err as the error envelope. It also serves as the app-level
// fiber.Config.ErrorHandler for errors raised outside the middleware chain.
func (m *ErrorMiddleware) Handle(c fiber.Ctx, err error) error {
	e := normalizeError(err)
	if e.StatusCode >= 500 {
		m.logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", e.StatusCode),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
	} else {
		m.logger.Debug("request rejected",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", e.StatusCode),
			zap.Error(err),
		)
	}
	return response.Error(c, e.StatusCode, e.Code, e.Message, e.ID)
}

func normalizeError(err error) AppError {
	internal := AppError{
		StatusCode: fiber.StatusInternalServerError,
		Code:       response.CodeInternal,
		Message:    response.MessageInternalServerError,
	}
	if err == nil {
		return internal
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 {
			return internal
		}
		out := AppError{StatusCode: appErr.StatusCode, Code: appErr.Code, Message: appErr.Message, ID: appErr.ID}
		if out.Code == "" {
			out.Code = response.DefaultCode(out.StatusCode)
		}
		if out.Message == "" {
			out.Message = response.DefaultMessage(out.StatusCode)
		}
		// 5xx keep their code and message but never the cause or the id.
		if out.StatusCode >= 500 {
			out.ID = ""
		}
		return out
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return internal
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessage(status)
		}
		return AppError{StatusCode: status, Code: response.DefaultCode(status), Message: msg}
	}

	return internal
}
