// Package manager defines the versioned capability contracts of the
// clusterman API and their implementation on top of the storage layer.
//
// Each API version is a Go interface; a later version embeds its direct
// predecessor, so the capability set of version N is always a strict
// superset of version N-1. One implementation type satisfies the newest
// version and, through embedding, every version before it.
package manager

import (
	"context"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/pkg/models"
)

// ResourceV12 is the v12 operation set of the management API.
type ResourceV12 interface {
	// GetVersion returns the running service build information.
	GetVersion(ctx context.Context) (*models.VersionInfo, humane.Error)

	// Echo returns the given message unchanged.
	Echo(ctx context.Context, message string) (*models.EchoMessage, humane.Error)

	// EchoError always fails with the given message.
	EchoError(ctx context.Context, message string) humane.Error

	// ListClusters returns all managed clusters.
	ListClusters(ctx context.Context) (*models.ClusterList, humane.Error)

	// AddClusters registers the given clusters and returns them with their
	// server-assigned fields populated.
	AddClusters(ctx context.Context, list models.ClusterList) (*models.ClusterList, humane.Error)

	// GetCluster returns the named cluster.
	GetCluster(ctx context.Context, name string) (*models.Cluster, humane.Error)

	// UpdateCluster updates the mutable fields of the named cluster.
	UpdateCluster(ctx context.Context, name string, cluster models.Cluster) (*models.Cluster, humane.Error)

	// DeleteCluster removes the named cluster and returns its last state.
	DeleteCluster(ctx context.Context, name string) (*models.Cluster, humane.Error)

	// ListRoleConfigGroups returns all role config groups of a service.
	ListRoleConfigGroups(ctx context.Context, cluster, service string) (*models.RoleConfigGroupList, humane.Error)

	// CreateRoleConfigGroups creates the given groups within a service.
	CreateRoleConfigGroups(ctx context.Context, cluster, service string, list models.RoleConfigGroupList) (*models.RoleConfigGroupList, humane.Error)

	// GetRoleConfigGroup returns the named group of a service.
	GetRoleConfigGroup(ctx context.Context, cluster, service, name string) (*models.RoleConfigGroup, humane.Error)

	// UpdateRoleConfigGroup updates the named group of a service.
	UpdateRoleConfigGroup(ctx context.Context, cluster, service, name string, group models.RoleConfigGroup) (*models.RoleConfigGroup, humane.Error)

	// DeleteRoleConfigGroup removes the named group and returns its last
	// state. Base groups cannot be deleted.
	DeleteRoleConfigGroup(ctx context.Context, cluster, service, name string) (*models.RoleConfigGroup, humane.Error)

	// MoveRoles reassigns the named roles to the given group and returns the
	// roles that were moved.
	MoveRoles(ctx context.Context, cluster, service, group string, roles models.RoleNameList) (*models.RoleList, humane.Error)
}

// ResourceV14 is the v14 operation set: everything v12 offers, plus the
// read-only database info operation.
type ResourceV14 interface {
	ResourceV12

	// GetScmDbInfo returns the connection information of the service's own
	// database. It fails when the database is unreachable; it never reports
	// a default record in that case.
	GetScmDbInfo(ctx context.Context) (*models.ScmDbInfo, humane.Error)
}
