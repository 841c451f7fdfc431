// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware translates application errors into HTTP responses.
// Kinds map to client statuses; anything unclassified is a 500 with a
// generic message so internal details never leak to callers.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := statusFor(appErr.Kind)
			if status >= 500 {
				log.Error("http", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
				return ctx.Status(status).JSON(ErrorResponse(status, "Internal server error"))
			}
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Internal server error"))
	}
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindAuthorization:
		return fiber.StatusForbidden
	case apperror.KindState:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
