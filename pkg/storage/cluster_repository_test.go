package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenFromURL("sqlite::memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		dsn     string
		wantErr bool
	}{
		{name: "sqlite", url: "sqlite:./test.db", dsn: "./test.db"},
		{name: "sqlite3_alias", url: "sqlite3::memory:", dsn: ":memory:"},
		{name: "empty_dsn_defaults", url: "sqlite:", dsn: DefaultDSN},
		{name: "unsupported", url: "postgres://localhost/cm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, dsn, err := ParseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "sqlite", scheme)
			require.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestClusterRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewClusterRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &ClusterRecord{Name: "prod-east", DisplayName: "Production East", FullVersion: "7.4.2"}))
	require.NoError(t, repo.Create(ctx, &ClusterRecord{Name: "staging", FullVersion: "7.5.0"}))

	// duplicate name rejected
	err := repo.Create(ctx, &ClusterRecord{Name: "prod-east"})
	require.ErrorIs(t, err, ErrClusterExists)

	got, err := repo.Get(ctx, "prod-east")
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
	require.Equal(t, "Production East", got.DisplayName)

	_, err = repo.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrClusterNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "prod-east", all[0].Name)
	require.Equal(t, "staging", all[1].Name)

	updated, err := repo.Update(ctx, "staging", &ClusterRecord{DisplayName: "Staging", FullVersion: "7.5.1"})
	require.NoError(t, err)
	require.Equal(t, "Staging", updated.DisplayName)
	require.Equal(t, "7.5.1", updated.FullVersion)

	deleted, err := repo.Delete(ctx, "staging")
	require.NoError(t, err)
	require.Equal(t, "staging", deleted.Name)

	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = repo.Delete(ctx, "staging")
	require.ErrorIs(t, err, ErrClusterNotFound)
}

func TestClusterRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clusters := NewClusterRepository(db)
	groups := NewRoleConfigGroupRepository(db)

	require.NoError(t, clusters.Create(ctx, &ClusterRecord{Name: "prod"}))
	require.NoError(t, groups.Create(ctx, []RoleConfigGroupRecord{
		{ClusterName: "prod", ServiceName: "kv", Name: "kv-server-base", RoleType: "SERVER", Base: true},
	}))
	require.NoError(t, groups.CreateRole(ctx, &RoleRecord{
		ClusterName: "prod", ServiceName: "kv", Name: "kv-server-1", RoleType: "SERVER", GroupName: "kv-server-base",
	}))

	_, err := clusters.Delete(ctx, "prod")
	require.NoError(t, err)

	left, err := groups.List(ctx, "prod", "kv")
	require.NoError(t, err)
	require.Empty(t, left)

	roles, err := groups.ListRoles(ctx, "prod", "kv")
	require.NoError(t, err)
	require.Empty(t, roles)
}
