// Package mock provides a function-field test double for the versioned
// management service contracts.
package mock

import (
	"context"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/pkg/manager"
	"github.com/spechtlabs/clusterman/pkg/models"
)

// Ensure the mock satisfies the newest version contract.
var _ manager.ResourceV14 = &MockManagerService{}

// MockManagerService implements manager.ResourceV14 by delegating every
// operation to an optional function field. Unset fields return zero values,
// so tests only wire the operations they exercise.
type MockManagerService struct {
	GetVersionFunc             func(ctx context.Context) (*models.VersionInfo, humane.Error)
	EchoFunc                   func(ctx context.Context, message string) (*models.EchoMessage, humane.Error)
	EchoErrorFunc              func(ctx context.Context, message string) humane.Error
	ListClustersFunc           func(ctx context.Context) (*models.ClusterList, humane.Error)
	AddClustersFunc            func(ctx context.Context, list models.ClusterList) (*models.ClusterList, humane.Error)
	GetClusterFunc             func(ctx context.Context, name string) (*models.Cluster, humane.Error)
	UpdateClusterFunc          func(ctx context.Context, name string, cluster models.Cluster) (*models.Cluster, humane.Error)
	DeleteClusterFunc          func(ctx context.Context, name string) (*models.Cluster, humane.Error)
	ListRoleConfigGroupsFunc   func(ctx context.Context, cluster, service string) (*models.RoleConfigGroupList, humane.Error)
	CreateRoleConfigGroupsFunc func(ctx context.Context, cluster, service string, list models.RoleConfigGroupList) (*models.RoleConfigGroupList, humane.Error)
	GetRoleConfigGroupFunc     func(ctx context.Context, cluster, service, name string) (*models.RoleConfigGroup, humane.Error)
	UpdateRoleConfigGroupFunc  func(ctx context.Context, cluster, service, name string, group models.RoleConfigGroup) (*models.RoleConfigGroup, humane.Error)
	DeleteRoleConfigGroupFunc  func(ctx context.Context, cluster, service, name string) (*models.RoleConfigGroup, humane.Error)
	MoveRolesFunc              func(ctx context.Context, cluster, service, group string, roles models.RoleNameList) (*models.RoleList, humane.Error)
	GetScmDbInfoFunc           func(ctx context.Context) (*models.ScmDbInfo, humane.Error)
}

func (m *MockManagerService) GetVersion(ctx context.Context) (*models.VersionInfo, humane.Error) {
	if m.GetVersionFunc != nil {
		return m.GetVersionFunc(ctx)
	}
	return nil, nil
}

func (m *MockManagerService) Echo(ctx context.Context, message string) (*models.EchoMessage, humane.Error) {
	if m.EchoFunc != nil {
		return m.EchoFunc(ctx, message)
	}
	return nil, nil
}

func (m *MockManagerService) EchoError(ctx context.Context, message string) humane.Error {
	if m.EchoErrorFunc != nil {
		return m.EchoErrorFunc(ctx, message)
	}
	return nil
}

func (m *MockManagerService) ListClusters(ctx context.Context) (*models.ClusterList, humane.Error) {
	if m.ListClustersFunc != nil {
		return m.ListClustersFunc(ctx)
	}
	return nil, nil
}

func (m *MockManagerService) AddClusters(ctx context.Context, list models.ClusterList) (*models.ClusterList, humane.Error) {
	if m.AddClustersFunc != nil {
		return m.AddClustersFunc(ctx, list)
	}
	return nil, nil
}

func (m *MockManagerService) GetCluster(ctx context.Context, name string) (*models.Cluster, humane.Error) {
	if m.GetClusterFunc != nil {
		return m.GetClusterFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockManagerService) UpdateCluster(ctx context.Context, name string, cluster models.Cluster) (*models.Cluster, humane.Error) {
	if m.UpdateClusterFunc != nil {
		return m.UpdateClusterFunc(ctx, name, cluster)
	}
	return nil, nil
}

func (m *MockManagerService) DeleteCluster(ctx context.Context, name string) (*models.Cluster, humane.Error) {
	if m.DeleteClusterFunc != nil {
		return m.DeleteClusterFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockManagerService) ListRoleConfigGroups(ctx context.Context, cluster, service string) (*models.RoleConfigGroupList, humane.Error) {
	if m.ListRoleConfigGroupsFunc != nil {
		return m.ListRoleConfigGroupsFunc(ctx, cluster, service)
	}
	return nil, nil
}

func (m *MockManagerService) CreateRoleConfigGroups(ctx context.Context, cluster, service string, list models.RoleConfigGroupList) (*models.RoleConfigGroupList, humane.Error) {
	if m.CreateRoleConfigGroupsFunc != nil {
		return m.CreateRoleConfigGroupsFunc(ctx, cluster, service, list)
	}
	return nil, nil
}

func (m *MockManagerService) GetRoleConfigGroup(ctx context.Context, cluster, service, name string) (*models.RoleConfigGroup, humane.Error) {
	if m.GetRoleConfigGroupFunc != nil {
		return m.GetRoleConfigGroupFunc(ctx, cluster, service, name)
	}
	return nil, nil
}

func (m *MockManagerService) UpdateRoleConfigGroup(ctx context.Context, cluster, service, name string, group models.RoleConfigGroup) (*models.RoleConfigGroup, humane.Error) {
	if m.UpdateRoleConfigGroupFunc != nil {
		return m.UpdateRoleConfigGroupFunc(ctx, cluster, service, name, group)
	}
	return nil, nil
}

func (m *MockManagerService) DeleteRoleConfigGroup(ctx context.Context, cluster, service, name string) (*models.RoleConfigGroup, humane.Error) {
	if m.DeleteRoleConfigGroupFunc != nil {
		return m.DeleteRoleConfigGroupFunc(ctx, cluster, service, name)
	}
	return nil, nil
}

func (m *MockManagerService) MoveRoles(ctx context.Context, cluster, service, group string, roles models.RoleNameList) (*models.RoleList, humane.Error) {
	if m.MoveRolesFunc != nil {
		return m.MoveRolesFunc(ctx, cluster, service, group, roles)
	}
	return nil, nil
}

func (m *MockManagerService) GetScmDbInfo(ctx context.Context) (*models.ScmDbInfo, humane.Error) {
	if m.GetScmDbInfoFunc != nil {
		return m.GetScmDbInfoFunc(ctx)
	}
	return nil, nil
}
