package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedGroups(t *testing.T, repo *RoleConfigGroupRepository) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, []RoleConfigGroupRecord{
		{ClusterName: "prod", ServiceName: "kv", Name: "kv-server-base", RoleType: "SERVER", Base: true},
		{ClusterName: "prod", ServiceName: "kv", Name: "kv-gateway-base", RoleType: "GATEWAY", Base: true},
	}))
	require.NoError(t, repo.CreateRole(ctx, &RoleRecord{
		ClusterName: "prod", ServiceName: "kv", Name: "kv-server-1", RoleType: "SERVER", GroupName: "kv-server-base",
	}))
	require.NoError(t, repo.CreateRole(ctx, &RoleRecord{
		ClusterName: "prod", ServiceName: "kv", Name: "kv-server-2", RoleType: "SERVER", GroupName: "kv-server-base",
	}))
	require.NoError(t, repo.CreateRole(ctx, &RoleRecord{
		ClusterName: "prod", ServiceName: "kv", Name: "kv-gateway-1", RoleType: "GATEWAY", GroupName: "kv-gateway-base",
	}))
}

func TestRoleConfigGroupRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleConfigGroupRepository(newTestDB(t))
	seedGroups(t, repo)

	// names are unique within the cluster/service scope
	err := repo.Create(ctx, []RoleConfigGroupRecord{
		{ClusterName: "prod", ServiceName: "kv", Name: "kv-server-base", RoleType: "SERVER"},
	})
	require.ErrorIs(t, err, ErrRoleConfigGroupExists)

	// same name in another service is fine
	require.NoError(t, repo.Create(ctx, []RoleConfigGroupRecord{
		{ClusterName: "prod", ServiceName: "index", Name: "kv-server-base", RoleType: "SERVER", Base: true},
	}))

	all, err := repo.List(ctx, "prod", "kv")
	require.NoError(t, err)
	require.Len(t, all, 2)

	got, err := repo.Get(ctx, "prod", "kv", "kv-server-base")
	require.NoError(t, err)
	require.True(t, got.Base)

	_, err = repo.Get(ctx, "prod", "kv", "missing")
	require.ErrorIs(t, err, ErrRoleConfigGroupNotFound)

	updated, err := repo.Update(ctx, "prod", "kv", "kv-server-base", &RoleConfigGroupRecord{
		DisplayName: "KV Servers",
		Config:      `[{"name":"heap_mb","value":"4096"}]`,
	})
	require.NoError(t, err)
	require.Equal(t, "KV Servers", updated.DisplayName)
	require.Contains(t, updated.Config, "heap_mb")

	// role type of an existing group cannot change
	_, err = repo.Update(ctx, "prod", "kv", "kv-server-base", &RoleConfigGroupRecord{RoleType: "GATEWAY"})
	require.ErrorIs(t, err, ErrRoleTypeMismatch)
}

func TestRoleConfigGroupRepository_DeleteMovesRolesToBase(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleConfigGroupRepository(newTestDB(t))
	seedGroups(t, repo)

	require.NoError(t, repo.Create(ctx, []RoleConfigGroupRecord{
		{ClusterName: "prod", ServiceName: "kv", Name: "kv-server-hot", RoleType: "SERVER"},
	}))
	_, err := repo.MoveRoles(ctx, "prod", "kv", "kv-server-hot", []string{"kv-server-1"})
	require.NoError(t, err)

	// base groups are immutable
	_, err = repo.Delete(ctx, "prod", "kv", "kv-server-base")
	require.ErrorIs(t, err, ErrBaseGroupImmutable)

	deleted, err := repo.Delete(ctx, "prod", "kv", "kv-server-hot")
	require.NoError(t, err)
	require.Equal(t, "kv-server-hot", deleted.Name)

	// member roles fall back to the base group
	roles, err := repo.ListRoles(ctx, "prod", "kv")
	require.NoError(t, err)
	for _, role := range roles {
		if role.Name == "kv-server-1" {
			require.Equal(t, "kv-server-base", role.GroupName)
		}
	}
}

func TestRoleConfigGroupRepository_MoveRoles(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleConfigGroupRepository(newTestDB(t))
	seedGroups(t, repo)

	require.NoError(t, repo.Create(ctx, []RoleConfigGroupRecord{
		{ClusterName: "prod", ServiceName: "kv", Name: "kv-server-hot", RoleType: "SERVER"},
	}))

	moved, err := repo.MoveRoles(ctx, "prod", "kv", "kv-server-hot", []string{"kv-server-1", "kv-server-2"})
	require.NoError(t, err)
	require.Len(t, moved, 2)
	for _, role := range moved {
		require.Equal(t, "kv-server-hot", role.GroupName)
	}

	// destination group type must match the role type
	_, err = repo.MoveRoles(ctx, "prod", "kv", "kv-server-hot", []string{"kv-gateway-1"})
	require.ErrorIs(t, err, ErrRoleTypeMismatch)

	// unknown roles abort the whole move
	_, err = repo.MoveRoles(ctx, "prod", "kv", "kv-server-base", []string{"kv-server-1", "ghost"})
	require.ErrorIs(t, err, ErrRoleNotFound)

	// kv-server-1 must not have moved in the failed call
	role, err := repo.Get(ctx, "prod", "kv", "kv-server-hot")
	require.NoError(t, err)
	require.Equal(t, "SERVER", role.RoleType)
	roles, err := repo.ListRoles(ctx, "prod", "kv")
	require.NoError(t, err)
	for _, rr := range roles {
		if rr.Name == "kv-server-1" {
			require.Equal(t, "kv-server-hot", rr.GroupName)
		}
	}

	// moving to a missing group fails up front
	_, err = repo.MoveRoles(ctx, "prod", "kv", "ghost-group", []string{"kv-server-1"})
	require.ErrorIs(t, err, ErrRoleConfigGroupNotFound)
}
