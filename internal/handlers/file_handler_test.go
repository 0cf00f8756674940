package handlers

import (
	"net/http"
	"testing"

	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, nil)

	resp, err := env.app.Test(multipartRequest(t, "/api/files/upload", env.tokenFor(t, user), "file", "report.pdf"), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, "report.pdf", body.Data["fileName"])
	assert.Equal(t, float64(4), body.Data["filesRemaining"])
	assert.NotEmpty(t, body.Data["fileId"])
}

func TestUploadEndpoint_QuotaExceeded(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, func(u *models.User) { u.FilesUploadedCount = 5 })

	resp, err := env.app.Test(multipartRequest(t, "/api/files/upload", env.tokenFor(t, user), "file", "report.pdf"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "Upload limit reached", body.Message)
	assert.Contains(t, body.Error, "5")
}

func TestUploadEndpoint_NoFile(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, nil)

	resp, err := env.app.Test(multipartRequest(t, "/api/files/upload", env.tokenFor(t, user), "", ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "No file uploaded", body.Error)
}

func TestUploadEndpoint_Deactivated(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, func(u *models.User) { u.IsActive = false })

	resp, err := env.app.Test(multipartRequest(t, "/api/files/upload", env.tokenFor(t, user), "file", "report.pdf"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUploadEndpoint_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(multipartRequest(t, "/api/files/upload", "", "file", "report.pdf"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, func(u *models.User) { u.FilesUploadedCount = 2 })

	resp, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/files/stats", env.tokenFor(t, user), nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(2), body.Data["filesUploaded"])
	assert.Equal(t, float64(5), body.Data["monthlyLimit"])
	assert.Equal(t, float64(3), body.Data["filesRemaining"])
	assert.Equal(t, "free", body.Data["plan"])
}

func TestListUploadsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, nil)
	token := env.tokenFor(t, user)

	for _, name := range []string{"a.pdf", "b.pdf"} {
		resp, err := env.app.Test(multipartRequest(t, "/api/files/upload", token, "file", name), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := env.app.Test(jsonRequest(t, http.MethodGet, "/api/files/uploads", token, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
