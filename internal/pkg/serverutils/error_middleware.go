package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"interview-prep-be/pkg/interview"
)

const (
	StatusBadRequest = fiber.StatusBadRequest
)

// AppError carries an HTTP status through the service layer.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// ErrorHandlerMiddleware converts errors bubbled out of controllers into
// the standard envelope. Engine errors map by kind; everything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "internal server error"

		var appErr *AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = appErr.Message
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		default:
			if kind := interview.KindOf(err); kind != "" {
				status = statusForKind(kind)
				message = err.Error()
			}
		}

		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}

func statusForKind(kind interview.Kind) int {
	switch kind {
	case interview.KindValidation:
		return fiber.StatusBadRequest
	case interview.KindNotFound:
		return fiber.StatusNotFound
	case interview.KindInvalidState:
		return fiber.StatusConflict
	case interview.KindGeneration, interview.KindFeedback:
		// The provider failed; the session is untouched and the caller
		// may retry the same operation.
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
