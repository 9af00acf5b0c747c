package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"dsa-catalog/internal/config"
	"dsa-catalog/internal/domain"
	"dsa-catalog/internal/logger"
	"dsa-catalog/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	code := m.Run()
	_ = logger.Sync()
	os.Exit(code)
}

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger())
	app.Get("/topics/:id", NewValidationMiddleware().ValidateTopicID(), handler)
	return app
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"topic not found", domain.NewTopicNotFoundError("stack"), http.StatusNotFound, string(domain.CodeTopicNotFound)},
		{"not found", domain.NewNotFoundError("gone"), http.StatusNotFound, string(domain.CodeNotFound)},
		{"invalid input", domain.NewInvalidInputError("bad"), http.StatusBadRequest, string(domain.CodeInvalidInput)},
		{"store", domain.NewStoreError("db down", errors.New("ORA-12541")), http.StatusServiceUnavailable, string(domain.CodeStore)},
		{"internal", domain.NewInternalError("oops", nil), http.StatusInternalServerError, string(domain.CodeInternal)},
		{"wrapped domain error", errors.Join(errors.New("ctx"), domain.NewTopicNotFoundError("x")), http.StatusNotFound, string(domain.CodeTopicNotFound)},
		{"fiber error", fiber.NewError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, string(domain.CodeInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/topics/stack", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, resp.Header.Get(RequestIDHeader), body.RequestID)
		})
	}
}

func TestErrorHandler_DomainErrorDetails(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error { return domain.NewTopicNotFoundError("heap-sort") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/topics/heap-sort", nil))
	require.NoError(t, err)

	var body ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "heap-sort", body.Details["topic_id"])
}

func TestValidateTopicID(t *testing.T) {
	t.Run("valid id reaches handler", func(t *testing.T) {
		var seen string
		app := newTestApp(func(c *fiber.Ctx) error {
			seen = TopicID(c)
			return c.SendStatus(http.StatusNoContent)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/topics/binary-search", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "binary-search", seen)
	})

	for _, id := range []string{"Binary-Search", "two--pointers", "-stack", "stack_1"} {
		t.Run("rejects "+id, func(t *testing.T) {
			called := false
			app := newTestApp(func(c *fiber.Ctx) error {
				called = true
				return nil
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/topics/"+id, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.False(t, called)

			var body ValidationErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, string(domain.CodeValidation), body.Code)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, "id", body.Errors[0].Field)
			assert.Equal(t, domain.CodeInvalidFormat, body.Errors[0].Code)
		})
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return c.SendString(RequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/topics/stack", nil))
		require.NoError(t, err)

		id := resp.Header.Get(RequestIDHeader)
		assert.True(t, util.IsULID(id))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, id, string(body))
	})

	t.Run("keeps a client ULID", func(t *testing.T) {
		clientID := util.NewULID()
		req := httptest.NewRequest(http.MethodGet, "/topics/stack", nil)
		req.Header.Set(RequestIDHeader, clientID)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, clientID, resp.Header.Get(RequestIDHeader))
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/topics/stack", nil)
		req.Header.Set(RequestIDHeader, "<script>")

		resp, err := app.Test(req)
		require.NoError(t, err)
		got := resp.Header.Get(RequestIDHeader)
		assert.NotEqual(t, "<script>", got)
		assert.True(t, util.IsULID(got))
	})
}
