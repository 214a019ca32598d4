package manager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/clusterman/pkg/storage"
	"gorm.io/gorm"
)

// ErrDatabaseUnavailable marks errors caused by the management database
// being unreachable. The API layer maps it to 503.
var ErrDatabaseUnavailable = errors.New("management database unavailable")

// ErrInvalidRequest marks errors caused by malformed input. The API layer
// maps it to 400.
var ErrInvalidRequest = errors.New("invalid request")

// Compile-time check: ManagerService satisfies the newest version contract
// and, through interface embedding, every prior one.
var _ ResourceV14 = (*ManagerService)(nil)

// ManagerService implements the versioned management API on top of the
// relational storage layer.
type ManagerService struct {
	db       *gorm.DB
	dbURL    string
	clusters *storage.ClusterRepository
	groups   *storage.RoleConfigGroupRepository
	version  models.VersionInfo
}

// Option configures a ManagerService during construction.
type Option func(*ManagerService)

// WithVersionInfo sets the build information reported by GetVersion.
func WithVersionInfo(info models.VersionInfo) Option {
	return func(s *ManagerService) {
		s.version = info
	}
}

// WithDatabaseURL records the db-url the service was opened with; it is the
// source for the db info report.
func WithDatabaseURL(dbURL string) Option {
	return func(s *ManagerService) {
		s.dbURL = dbURL
	}
}

// NewManagerService builds a service over an already opened and migrated
// database handle.
func NewManagerService(db *gorm.DB, opts ...Option) *ManagerService {
	svc := &ManagerService{
		db:       db,
		dbURL:    "sqlite:" + storage.DefaultDSN,
		clusters: storage.NewClusterRepository(db),
		groups:   storage.NewRoleConfigGroupRepository(db),
		version:  models.VersionInfo{Version: "dev"},
	}

	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *ManagerService) GetVersion(_ context.Context) (*models.VersionInfo, humane.Error) {
	info := s.version
	return &info, nil
}

func (s *ManagerService) Echo(_ context.Context, message string) (*models.EchoMessage, humane.Error) {
	return &models.EchoMessage{Message: message}, nil
}

func (s *ManagerService) EchoError(_ context.Context, message string) humane.Error {
	return humane.New(message, "this endpoint always fails; it exists to exercise error handling")
}

func (s *ManagerService) ListClusters(ctx context.Context) (*models.ClusterList, humane.Error) {
	recs, err := s.clusters.List(ctx)
	if err != nil {
		return nil, humane.Wrap(err, "failed to list clusters", "check the database logs for details")
	}

	items := make([]models.Cluster, 0, len(recs))
	for i := range recs {
		items = append(items, clusterToModel(&recs[i]))
	}
	list := models.NewClusterList(items...)
	return &list, nil
}

func (s *ManagerService) AddClusters(ctx context.Context, list models.ClusterList) (*models.ClusterList, humane.Error) {
	created := make([]models.Cluster, 0, len(list.Values()))
	for _, cluster := range list.Values() {
		if cluster.Name == "" {
			return nil, humane.Wrap(ErrInvalidRequest, "cluster name must not be empty", "set the name field on every cluster in the request")
		}

		rec := clusterToRecord(&cluster)
		if err := s.clusters.Create(ctx, rec); err != nil {
			return nil, humane.Wrap(err, fmt.Sprintf("failed to create cluster %q", cluster.Name), "verify the cluster name is not already taken")
		}
		created = append(created, clusterToModel(rec))
	}

	result := models.NewClusterList(created...)
	return &result, nil
}

func (s *ManagerService) GetCluster(ctx context.Context, name string) (*models.Cluster, humane.Error) {
	rec, err := s.clusters.Get(ctx, name)
	if err != nil {
		return nil, humane.Wrap(err, fmt.Sprintf("failed to fetch cluster %q", name), "verify the cluster name")
	}
	cluster := clusterToModel(rec)
	return &cluster, nil
}

func (s *ManagerService) UpdateCluster(ctx context.Context, name string, cluster models.Cluster) (*models.Cluster, humane.Error) {
	rec, err := s.clusters.Update(ctx, name, clusterToRecord(&cluster))
	if err != nil {
		return nil, humane.Wrap(err, fmt.Sprintf("failed to update cluster %q", name), "verify the cluster name")
	}
	updated := clusterToModel(rec)
	return &updated, nil
}

func (s *ManagerService) DeleteCluster(ctx context.Context, name string) (*models.Cluster, humane.Error) {
	rec, err := s.clusters.Delete(ctx, name)
	if err != nil {
		return nil, humane.Wrap(err, fmt.Sprintf("failed to delete cluster %q", name), "verify the cluster name")
	}
	deleted := clusterToModel(rec)
	return &deleted, nil
}

// requireCluster guards the role config group operations: groups live under
// a cluster, so a missing cluster is a not-found, not an empty result.
func (s *ManagerService) requireCluster(ctx context.Context, name string) humane.Error {
	if _, err := s.clusters.Get(ctx, name); err != nil {
		return humane.Wrap(err, fmt.Sprintf("failed to fetch cluster %q", name), "verify the cluster name")
	}
	return nil
}

func (s *ManagerService) ListRoleConfigGroups(ctx context.Context, cluster, service string) (*models.RoleConfigGroupList, humane.Error) {
	if herr := s.requireCluster(ctx, cluster); herr != nil {
		return nil, herr
	}

	recs, err := s.groups.List(ctx, cluster, service)
	if err != nil {
		return nil, humane.Wrap(err, "failed to list role config groups", "check the database logs for details")
	}

	items := make([]models.RoleConfigGroup, 0, len(recs))
	for i := range recs {
		group, err := groupToModel(&recs[i])
		if err != nil {
			return nil, humane.Wrap(err, "failed to decode role config group", "the stored config is corrupt; inspect the record in the database")
		}
		items = append(items, group)
	}
	list := models.NewRoleConfigGroupList(items...)
	return &list, nil
}

func (s *ManagerService) CreateRoleConfigGroups(ctx context.Context, cluster, service string, list models.RoleConfigGroupList) (*models.RoleConfigGroupList, humane.Error) {
	if herr := s.requireCluster(ctx, cluster); herr != nil {
		return nil, herr
	}

	recs := make([]storage.RoleConfigGroupRecord, 0, len(list.Values()))
	for _, group := range list.Values() {
		if group.Name == "" || group.RoleType == "" {
			return nil, humane.Wrap(ErrInvalidRequest, "role config group name and roleType must not be empty", "set both fields on every group in the request")
		}
		rec, err := groupToRecord(cluster, service, &group)
		if err != nil {
			return nil, humane.Wrap(err, "failed to encode role config group", "check the config entries of the request")
		}
		recs = append(recs, *rec)
	}

	if err := s.groups.Create(ctx, recs); err != nil {
		return nil, humane.Wrap(err, "failed to create role config groups", "verify the group names are not already taken")
	}

	created := make([]models.RoleConfigGroup, 0, len(recs))
	for i := range recs {
		group, err := groupToModel(&recs[i])
		if err != nil {
			return nil, humane.Wrap(err, "failed to decode role config group", "")
		}
		created = append(created, group)
	}
	result := models.NewRoleConfigGroupList(created...)
	return &result, nil
}

func (s *ManagerService) GetRoleConfigGroup(ctx context.Context, cluster, service, name string) (*models.RoleConfigGroup, humane.Error) {
	if herr := s.requireCluster(ctx, cluster); herr != nil {
		return nil, herr
	}

	rec, err := s.groups.Get(ctx, cluster, service, name)
	if err != nil {
		return nil, humane.Wrap(err, fmt.Sprintf("failed to fetch role config group %q", name), "verify the group name")
	}
	group, err := groupToModel(rec)
	if err != nil {
		return nil, humane.Wrap(err, "failed to decode role config group", "the stored config is corrupt; inspect the record in the database")
	}
	return &group, nil
}

func (s *ManagerService) UpdateRoleConfigGroup(ctx context.Context, cluster, service, name string, group models.RoleConfigGroup) (*models.RoleConfigGroup, humane.Error) {
	if herr := s.requireCluster(ctx, cluster); herr != nil {
		return nil, herr
	}

	rec, err := groupToRecord(cluster, service, &group)
	if err != nil {
		return nil, humane.Wrap(err, "failed to encode role config group", "check the config entries of the request")
	}

	updated, err := s.groups.Update(ctx, cluster, service, name, rec)
	if err != nil {
		return nil, humane.Wrap(err, fmt.Sprintf("failed to update role config group %q", name), "verify the group name and that the role type is unchanged")
	}
	result, err := groupToModel(updated)
	if err != nil {
		return nil, humane.Wrap(err, "failed to decode role config group", "")
	}
	return &result, nil
}

func (s *ManagerService) DeleteRoleConfigGroup(ctx context.Context, cluster, service, name string) (*models.RoleConfigGroup, humane.Error) {
	if herr := s.requireCluster(ctx, cluster); herr != nil {
		return nil, herr
	}

	rec, err := s.groups.Delete(ctx, cluster, service, name)
	if err != nil {
		return nil, humane.Wrap(err, fmt.Sprintf("failed to delete role config group %q", name), "base groups cannot be deleted")
	}
	group, derr := groupToModel(rec)
	if derr != nil {
		return nil, humane.Wrap(derr, "failed to decode role config group", "")
	}
	return &group, nil
}

func (s *ManagerService) MoveRoles(ctx context.Context, cluster, service, group string, roles models.RoleNameList) (*models.RoleList, humane.Error) {
	if herr := s.requireCluster(ctx, cluster); herr != nil {
		return nil, herr
	}

	moved, err := s.groups.MoveRoles(ctx, cluster, service, group, roles.Values())
	if err != nil {
		return nil, humane.Wrap(err, fmt.Sprintf("failed to move roles to group %q", group), "roles can only move to a group of their own role type within the same service")
	}

	items := make([]models.Role, 0, len(moved))
	for i := range moved {
		items = append(items, roleToModel(&moved[i]))
	}
	list := models.NewRoleList(items...)
	return &list, nil
}

func (s *ManagerService) GetScmDbInfo(ctx context.Context) (*models.ScmDbInfo, humane.Error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, humane.Wrap(fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err), "failed to access the management database handle", "check the database url in the server configuration")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, humane.Wrap(fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err), "management database is unreachable", "check that the database file exists and is readable")
	}

	scheme, dsn, err := storage.ParseURL(s.dbURL)
	if err != nil {
		return nil, humane.Wrap(err, "failed to parse the configured database url", "check the database url in the server configuration")
	}

	info := &models.ScmDbInfo{Name: dsn}
	switch scheme {
	case "sqlite":
		info.Type = models.ScmDbSQLite
		info.EmbeddedDbUsed = true
	default:
		// ParseURL only admits known schemes; keep the raw value visible
		// should a new backend slip through without a mapping.
		info.Type = models.ScmDbType(scheme)
	}
	return info, nil
}

func clusterToModel(rec *storage.ClusterRecord) models.Cluster {
	return models.Cluster{
		Name:        rec.Name,
		DisplayName: rec.DisplayName,
		FullVersion: rec.FullVersion,
		UUID:        rec.ID,
	}
}

func clusterToRecord(c *models.Cluster) *storage.ClusterRecord {
	return &storage.ClusterRecord{
		Name:        c.Name,
		DisplayName: c.DisplayName,
		FullVersion: c.FullVersion,
	}
}

func groupToModel(rec *storage.RoleConfigGroupRecord) (models.RoleConfigGroup, error) {
	group := models.RoleConfigGroup{
		Name:        rec.Name,
		DisplayName: rec.DisplayName,
		RoleType:    rec.RoleType,
		Base:        rec.Base,
	}
	if rec.Config != "" {
		if err := json.Unmarshal([]byte(rec.Config), &group.Config); err != nil {
			return models.RoleConfigGroup{}, err
		}
	}
	return group, nil
}

func groupToRecord(cluster, service string, group *models.RoleConfigGroup) (*storage.RoleConfigGroupRecord, error) {
	rec := &storage.RoleConfigGroupRecord{
		ClusterName: cluster,
		ServiceName: service,
		Name:        group.Name,
		DisplayName: group.DisplayName,
		RoleType:    group.RoleType,
		Base:        group.Base,
	}
	if len(group.Config) > 0 {
		data, err := json.Marshal(group.Config)
		if err != nil {
			return nil, err
		}
		rec.Config = string(data)
	}
	return rec, nil
}

func roleToModel(rec *storage.RoleRecord) models.Role {
	return models.Role{
		Name:                rec.Name,
		Type:                rec.RoleType,
		RoleConfigGroupName: rec.GroupName,
	}
}
