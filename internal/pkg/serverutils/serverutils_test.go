package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"interview-prep-be/pkg/interview"
)

func TestValidateRequest(t *testing.T) {
	type body struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=3"`
	}

	if err := ValidateRequest(body{Email: "a@b.com", Name: "abc"}); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}

	err := ValidateRequest(body{Email: "not-an-email"})
	if err == nil {
		t.Fatal("invalid body accepted")
	}
	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", appErr.Status, fiber.StatusBadRequest)
	}
	if !strings.Contains(appErr.Message, "Email") {
		t.Errorf("message %q does not name the failing field", appErr.Message)
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", interview.NewValidationError("answer is empty"), fiber.StatusBadRequest},
		{"not found", interview.NewNotFoundError("session missing"), fiber.StatusNotFound},
		{"invalid state", interview.NewInvalidStateError("cannot advance"), fiber.StatusConflict},
		{"generation", interview.NewGenerationError("provider down", nil), fiber.StatusBadGateway},
		{"feedback", interview.NewFeedbackError("bad batch", nil), fiber.StatusBadGateway},
		{"app error", NewAppError(fiber.StatusTeapot, "teapot", nil), fiber.StatusTeapot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/boom", func(ctx *fiber.Ctx) error {
				return tc.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}

			raw, _ := io.ReadAll(resp.Body)
			var envelope Response[any]
			if err := json.Unmarshal(raw, &envelope); err != nil {
				t.Fatalf("response is not the standard envelope: %v", err)
			}
			if envelope.Success {
				t.Error("error response marked success")
			}
			if envelope.Message == "" {
				t.Error("error response has no message")
			}
		})
	}
}

func TestSuccessResponse(t *testing.T) {
	res := SuccessResponse("done", 42)
	if !res.Success || res.Message != "done" || res.Data != 42 {
		t.Errorf("unexpected envelope: %+v", res)
	}
}
