package api_test

import (
	"context"
	"net/http"
	"testing"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/pkg/manager"
	"github.com/spechtlabs/clusterman/pkg/manager/mock"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/clusterman/pkg/storage"
	"github.com/stretchr/testify/require"
)

// Error mapping is driven by the cause chain of the service's humane errors,
// so a mock service can inject failures without a database behind it.
func TestErrorMapping_ServiceFailures(t *testing.T) {
	svc := &mock.MockManagerService{
		ListClustersFunc: func(ctx context.Context) (*models.ClusterList, humane.Error) {
			return nil, humane.New("backend exploded", "try again later")
		},
		GetClusterFunc: func(ctx context.Context, name string) (*models.Cluster, humane.Error) {
			return nil, humane.Wrap(storage.ErrClusterNotFound, "failed to get cluster", "check the cluster name")
		},
		AddClustersFunc: func(ctx context.Context, list models.ClusterList) (*models.ClusterList, humane.Error) {
			return nil, humane.Wrap(storage.ErrClusterExists, "failed to add clusters", "pick an unused name")
		},
		GetScmDbInfoFunc: func(ctx context.Context) (*models.ScmDbInfo, humane.Error) {
			return nil, humane.Wrap(manager.ErrDatabaseUnavailable, "cannot reach the management database", "check the database server")
		},
	}
	ts := newTestServer(t, svc)

	// an error without a well-known cause gets the handler's fallback status
	resp, body := doReq(t, ts, http.MethodGet, "/api/v14/clusters", nil, nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	requireErrorMessage(t, body, "backend exploded")

	resp, body = doReq(t, ts, http.MethodGet, "/api/v14/clusters/nope", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	requireErrorMessage(t, body, "failed to get cluster")

	resp, _ = doReq(t, ts, http.MethodPost, "/api/v14/clusters", nil, models.NewClusterList(
		models.Cluster{Name: "dup"},
	))
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doReq(t, ts, http.MethodGet, "/api/v14/cm/scmDbInfo", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	requireErrorMessage(t, body, "cannot reach the management database")
}

// The handlers pass mock responses through untouched.
func TestErrorMapping_MockSuccessPassthrough(t *testing.T) {
	svc := &mock.MockManagerService{
		GetScmDbInfoFunc: func(ctx context.Context) (*models.ScmDbInfo, humane.Error) {
			return &models.ScmDbInfo{
				Type:           models.ScmDbPostgres,
				Host:           "db.internal:5432",
				Name:           "scm",
				EmbeddedDbUsed: false,
			}, nil
		},
	}
	ts := newTestServer(t, svc)

	resp, body := doReq(t, ts, http.MethodGet, "/api/v14/cm/scmDbInfo", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"scmDbType":"POSTGRESQL","scmDbHost":"db.internal:5432","scmDbName":"scm","embeddedDbUsed":false}`, string(body))
}
