package license_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	licensemod "github.com/gong8/sentinel-site/modules/license"
	"github.com/gong8/sentinel-site/pkg/license"
)

type staticSource struct {
	status license.Status
}

func (s staticSource) Status(context.Context) license.Status {
	return s.status
}

func (s staticSource) Capabilities(context.Context) license.Capabilities {
	return license.NewCapabilities(s.status)
}

func getStatus(t *testing.T, status license.Status) map[string]any {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := licensemod.NewService(staticSource{status: status}, log).Handle()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStatusEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("free tier defaults", func(t *testing.T) {
		t.Parallel()

		body := getStatus(t, license.DefaultStatus())

		status, ok := body["status"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "free", status["tier"])
		assert.Equal(t, license.DefaultUpgradeURL, status["upgradeUrl"])

		caps, ok := body["capabilities"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, caps["canAccessPublishers"])
	})

	t.Run("enterprise capabilities reflect settings", func(t *testing.T) {
		t.Parallel()

		status := license.DefaultStatus()
		status.Tier = license.TierEnterprise
		status.Settings.AdminMCPEnabled = true

		body := getStatus(t, status)

		caps, ok := body["capabilities"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, caps["canAccessSentinelAgent"])
		assert.Equal(t, true, caps["canAccessMcpConfirmations"])
	})
}
