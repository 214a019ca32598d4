package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spechtlabs/clusterman/pkg/manager"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/clusterman/pkg/storage"
	"github.com/stretchr/testify/require"
)

const groupsPath = "/api/v14/clusters/prod/services/kv/roleConfigGroups"

// newGroupServer seeds a cluster with base groups and roles and returns the
// server plus the repository for direct checks.
func newGroupServer(t *testing.T) (*storage.RoleConfigGroupRepository, *httptest.Server) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.OpenFromURL("sqlite::memory:")
	require.NoError(t, err)
	require.NoError(t, storage.AutoMigrate(db))
	svc := manager.NewManagerService(db, manager.WithDatabaseURL("sqlite::memory:"))
	repo := storage.NewRoleConfigGroupRepository(db)

	_, herr := svc.AddClusters(ctx, models.NewClusterList(models.Cluster{Name: "prod"}))
	require.Nil(t, herr)
	_, herr = svc.CreateRoleConfigGroups(ctx, "prod", "kv", models.NewRoleConfigGroupList(
		models.RoleConfigGroup{Name: "kv-server-base", RoleType: "SERVER", Base: true},
		models.RoleConfigGroup{Name: "kv-gateway-base", RoleType: "GATEWAY", Base: true},
	))
	require.Nil(t, herr)
	require.NoError(t, repo.CreateRole(ctx, &storage.RoleRecord{
		ClusterName: "prod", ServiceName: "kv", Name: "kv-server-1", RoleType: "SERVER", GroupName: "kv-server-base",
	}))
	require.NoError(t, repo.CreateRole(ctx, &storage.RoleRecord{
		ClusterName: "prod", ServiceName: "kv", Name: "kv-gateway-1", RoleType: "GATEWAY", GroupName: "kv-gateway-base",
	}))

	return repo, newTestServer(t, svc)
}

func TestRoleConfigGroups_Lifecycle(t *testing.T) {
	_, ts := newGroupServer(t)

	resp, body := doReq(t, ts, http.MethodGet, groupsPath, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list models.RoleConfigGroupList
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Values(), 2)

	// groups of an unknown cluster are a 404, not an empty list
	resp, _ = doReq(t, ts, http.MethodGet, "/api/v14/clusters/ghost/services/kv/roleConfigGroups", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doReq(t, ts, http.MethodPost, groupsPath, nil, models.NewRoleConfigGroupList(
		models.RoleConfigGroup{
			Name:     "kv-server-hot",
			RoleType: "SERVER",
			Config:   []models.ConfigEntry{{Name: "heap_mb", Value: "8192"}},
		},
	))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// recreating the same group is a conflict
	resp, _ = doReq(t, ts, http.MethodPost, groupsPath, nil, models.NewRoleConfigGroupList(
		models.RoleConfigGroup{Name: "kv-server-hot", RoleType: "SERVER"},
	))
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doReq(t, ts, http.MethodGet, groupsPath+"/kv-server-hot", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var group models.RoleConfigGroup
	require.NoError(t, json.Unmarshal(body, &group))
	require.Equal(t, []models.ConfigEntry{{Name: "heap_mb", Value: "8192"}}, group.Config)

	// role type changes are rejected
	resp, _ = doReq(t, ts, http.MethodPut, groupsPath+"/kv-server-hot", nil,
		models.RoleConfigGroup{RoleType: "GATEWAY"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doReq(t, ts, http.MethodPut, groupsPath+"/kv-server-hot", nil,
		models.RoleConfigGroup{DisplayName: "Hot KV Servers", RoleType: "SERVER"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &group))
	require.Equal(t, "Hot KV Servers", group.DisplayName)

	// base groups cannot be deleted
	resp, _ = doReq(t, ts, http.MethodDelete, groupsPath+"/kv-server-base", nil, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doReq(t, ts, http.MethodDelete, groupsPath+"/kv-server-hot", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &group))
	require.Equal(t, "kv-server-hot", group.Name)
}

func TestRoleConfigGroups_MoveRoles(t *testing.T) {
	repo, ts := newGroupServer(t)

	resp, _ := doReq(t, ts, http.MethodPost, groupsPath, nil, models.NewRoleConfigGroupList(
		models.RoleConfigGroup{Name: "kv-server-hot", RoleType: "SERVER"},
	))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doReq(t, ts, http.MethodPut, groupsPath+"/kv-server-hot/roles", nil,
		models.NewRoleNameList("kv-server-1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var moved models.RoleList
	require.NoError(t, json.Unmarshal(body, &moved))
	require.Len(t, moved.Values(), 1)
	require.Equal(t, "kv-server-hot", moved.Values()[0].RoleConfigGroupName)

	// a gateway role cannot move into a server group
	resp, _ = doReq(t, ts, http.MethodPut, groupsPath+"/kv-server-hot/roles", nil,
		models.NewRoleNameList("kv-gateway-1"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// an unknown role aborts the whole move
	resp, _ = doReq(t, ts, http.MethodPut, groupsPath+"/kv-server-base/roles", nil,
		models.NewRoleNameList("kv-server-1", "ghost"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	roles, err := repo.ListRoles(context.Background(), "prod", "kv")
	require.NoError(t, err)
	for _, role := range roles {
		if role.Name == "kv-server-1" {
			require.Equal(t, "kv-server-hot", role.GroupName)
		}
	}

	// moving to an unknown group fails up front
	resp, _ = doReq(t, ts, http.MethodPut, groupsPath+"/ghost-group/roles", nil,
		models.NewRoleNameList("kv-server-1"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
