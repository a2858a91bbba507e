package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/adrienbaron/lecoindujazz/api"
	"github.com/adrienbaron/lecoindujazz/internal/catalog"
	"github.com/adrienbaron/lecoindujazz/internal/domain"
	"github.com/adrienbaron/lecoindujazz/internal/mailer"
	"github.com/adrienbaron/lecoindujazz/internal/mocks"
	"github.com/adrienbaron/lecoindujazz/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator:       validator.NewValidator(),
		sessionManager:  scs.New(),
		catalog:         catalog.NewCalaisTheatre(catalog.DefaultShows()),
		pricer:          domain.NewFlatPricer(),
		mailer:          &mailer.MockMailer{},
		lockRepo:        &mocks.MockLockRepo{},
		purchaseRepo:    &mocks.MockPurchaseRepo{},
		paymentProvider: &mocks.MockPaymentProvider{},
	}
	app.config.bookingOpen = true

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// setupTestSession loads and commits a session onto the request so the
// handler sees a real token, and returns that token for assertions.
func setupTestSession(t *testing.T, app *Application, r *http.Request) (*http.Request, string) {
	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyVisitor.String(), true)

	token, _, err := app.sessionManager.Commit(ctx)
	if err != nil {
		t.Fatalf("Failed to commit session: %v", err)
	}

	return r.WithContext(ctx), token
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func withShowID(r *http.Request, showID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("showID", showID)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
