package api_test

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"testing"

	"github.com/spechtlabs/clusterman/pkg/manager"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/clusterman/pkg/storage"
	"github.com/stretchr/testify/require"
)

func TestScmDbInfo_Healthy(t *testing.T) {
	_, ts := newManagedServer(t)

	resp, body := doReq(t, ts, http.MethodGet, "/api/v14/cm/scmDbInfo", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info models.ScmDbInfo
	require.NoError(t, json.Unmarshal(body, &info))
	require.Equal(t, models.ScmDbSQLite, info.Type)
	require.True(t, info.EmbeddedDbUsed)
	require.Equal(t, ":memory:", info.Name)

	// the operation is v14-only
	resp, _ = doReq(t, ts, http.MethodGet, "/api/v12/cm/scmDbInfo", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doReq(t, ts, http.MethodGet, "/api/v14/cm/scmDbInfo",
		map[string]string{"Accept": "application/xml"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, xml.Unmarshal(body, &info))
	require.Equal(t, models.ScmDbSQLite, info.Type)
}

func TestScmDbInfo_DatabaseUnreachable(t *testing.T) {
	db, err := storage.OpenFromURL("sqlite::memory:")
	require.NoError(t, err)
	require.NoError(t, storage.AutoMigrate(db))
	svc := manager.NewManagerService(db, manager.WithDatabaseURL("sqlite::memory:"))
	ts := newTestServer(t, svc)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp, body := doReq(t, ts, http.MethodGet, "/api/v14/cm/scmDbInfo", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// never a default record, always an error body
	var er models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &er))
	require.NotEmpty(t, er.Message)
	require.NotEmpty(t, er.Advice)
}
