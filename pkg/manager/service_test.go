package manager_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/spechtlabs/clusterman/pkg/manager"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/clusterman/pkg/storage"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *manager.ManagerService {
	t.Helper()
	db, err := storage.OpenFromURL("sqlite::memory:")
	require.NoError(t, err)
	require.NoError(t, storage.AutoMigrate(db))
	return manager.NewManagerService(db,
		manager.WithDatabaseURL("sqlite::memory:"),
		manager.WithVersionInfo(models.VersionInfo{Version: "1.2.3", GitCommit: "abc1234"}),
	)
}

func TestManagerService_VersionAndEcho(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	info, herr := svc.GetVersion(ctx)
	require.Nil(t, herr)
	require.Equal(t, "1.2.3", info.Version)

	msg, herr := svc.Echo(ctx, "hello there")
	require.Nil(t, herr)
	require.Equal(t, "hello there", msg.Message)

	err := svc.EchoError(ctx, "boom")
	require.NotNil(t, err)
	require.Equal(t, "boom", err.Error())
}

func TestManagerService_ClusterLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// empty list still serializes with an items field
	list, herr := svc.ListClusters(ctx)
	require.Nil(t, herr)
	data, err := json.Marshal(list)
	require.NoError(t, err)
	require.JSONEq(t, `{"items":[]}`, string(data))

	created, herr := svc.AddClusters(ctx, models.NewClusterList(
		models.Cluster{Name: "prod-east", DisplayName: "Production East", FullVersion: "7.4.2"},
		models.Cluster{Name: "staging", FullVersion: "7.5.0"},
	))
	require.Nil(t, herr)
	require.Len(t, created.Values(), 2)
	for _, c := range created.Values() {
		require.NotEmpty(t, c.UUID)
	}

	// duplicate names surface the storage sentinel through the cause chain
	_, herr = svc.AddClusters(ctx, models.NewClusterList(models.Cluster{Name: "prod-east"}))
	require.NotNil(t, herr)
	require.ErrorIs(t, herr.Cause(), storage.ErrClusterExists)

	// nameless clusters are rejected before touching storage
	_, herr = svc.AddClusters(ctx, models.NewClusterList(models.Cluster{DisplayName: "no name"}))
	require.NotNil(t, herr)
	require.ErrorIs(t, herr.Cause(), manager.ErrInvalidRequest)

	got, herr := svc.GetCluster(ctx, "prod-east")
	require.Nil(t, herr)
	require.Equal(t, "Production East", got.DisplayName)

	updated, herr := svc.UpdateCluster(ctx, "staging", models.Cluster{DisplayName: "Staging", FullVersion: "7.5.1"})
	require.Nil(t, herr)
	require.Equal(t, "Staging", updated.DisplayName)
	require.Equal(t, "7.5.1", updated.FullVersion)

	deleted, herr := svc.DeleteCluster(ctx, "staging")
	require.Nil(t, herr)
	require.Equal(t, "staging", deleted.Name)

	_, herr = svc.GetCluster(ctx, "staging")
	require.NotNil(t, herr)
	require.ErrorIs(t, herr.Cause(), storage.ErrClusterNotFound)
}

func TestManagerService_RoleConfigGroups(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, herr := svc.AddClusters(ctx, models.NewClusterList(models.Cluster{Name: "prod"}))
	require.Nil(t, herr)

	// groups of an unknown cluster are a not-found, not an empty list
	_, herr = svc.ListRoleConfigGroups(ctx, "ghost", "kv")
	require.NotNil(t, herr)
	require.ErrorIs(t, herr.Cause(), storage.ErrClusterNotFound)

	created, herr := svc.CreateRoleConfigGroups(ctx, "prod", "kv", models.NewRoleConfigGroupList(
		models.RoleConfigGroup{Name: "kv-server-base", RoleType: "SERVER", Base: true},
		models.RoleConfigGroup{
			Name:     "kv-server-hot",
			RoleType: "SERVER",
			Config:   []models.ConfigEntry{{Name: "heap_mb", Value: "8192"}},
		},
	))
	require.Nil(t, herr)
	require.Len(t, created.Values(), 2)

	got, herr := svc.GetRoleConfigGroup(ctx, "prod", "kv", "kv-server-hot")
	require.Nil(t, herr)
	require.Equal(t, []models.ConfigEntry{{Name: "heap_mb", Value: "8192"}}, got.Config)

	updated, herr := svc.UpdateRoleConfigGroup(ctx, "prod", "kv", "kv-server-hot", models.RoleConfigGroup{
		DisplayName: "Hot KV Servers",
		RoleType:    "SERVER",
		Config:      []models.ConfigEntry{{Name: "heap_mb", Value: "16384"}},
	})
	require.Nil(t, herr)
	require.Equal(t, "Hot KV Servers", updated.DisplayName)

	// changing the role type of an existing group is rejected
	_, herr = svc.UpdateRoleConfigGroup(ctx, "prod", "kv", "kv-server-hot", models.RoleConfigGroup{RoleType: "GATEWAY"})
	require.NotNil(t, herr)
	require.ErrorIs(t, herr.Cause(), storage.ErrRoleTypeMismatch)

	// base groups cannot be deleted
	_, herr = svc.DeleteRoleConfigGroup(ctx, "prod", "kv", "kv-server-base")
	require.NotNil(t, herr)
	require.ErrorIs(t, herr.Cause(), storage.ErrBaseGroupImmutable)

	deleted, herr := svc.DeleteRoleConfigGroup(ctx, "prod", "kv", "kv-server-hot")
	require.Nil(t, herr)
	require.Equal(t, "kv-server-hot", deleted.Name)
}

func TestManagerService_MoveRoles(t *testing.T) {
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
		models.RoleConfigGroup{Name: "kv-server-hot", RoleType: "SERVER"},
	))
	require.Nil(t, herr)
	require.NoError(t, repo.CreateRole(ctx, &storage.RoleRecord{
		ClusterName: "prod", ServiceName: "kv", Name: "kv-server-1", RoleType: "SERVER", GroupName: "kv-server-base",
	}))

	moved, herr := svc.MoveRoles(ctx, "prod", "kv", "kv-server-hot", models.NewRoleNameList("kv-server-1"))
	require.Nil(t, herr)
	require.Len(t, moved.Values(), 1)
	require.Equal(t, "kv-server-hot", moved.Values()[0].RoleConfigGroupName)

	_, herr = svc.MoveRoles(ctx, "prod", "kv", "kv-server-hot", models.NewRoleNameList("ghost"))
	require.NotNil(t, herr)
	require.ErrorIs(t, herr.Cause(), storage.ErrRoleNotFound)
}

func TestManagerService_GetScmDbInfo(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	info, herr := svc.GetScmDbInfo(ctx)
	require.Nil(t, herr)
	require.Equal(t, models.ScmDbSQLite, info.Type)
	require.True(t, info.EmbeddedDbUsed)
	require.Equal(t, ":memory:", info.Name)
	require.Empty(t, info.Host)
}
