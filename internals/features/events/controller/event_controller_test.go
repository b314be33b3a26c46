package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tanpa ?confirm=true penghapusan harus jadi no-op sebelum menyentuh DB
// (DB sengaja nil: kalau handler lolos gate, test panic).
func TestDeleteEventRequiresConfirm(t *testing.T) {
	ctrl := &EventController{}
	app := fiber.New()
	app.Delete("/events/:id", ctrl.DeleteEvent)

	for _, target := range []string{
		"/events/3f0c6f0a-0000-0000-0000-000000000001",
		"/events/3f0c6f0a-0000-0000-0000-000000000001?confirm=false",
	} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, sonic.Unmarshal(raw, &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Penghapusan dibatalkan", body.Message)
	}
}
