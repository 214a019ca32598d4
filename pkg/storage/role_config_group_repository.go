package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleConfigGroupRepository provides access to role config group and role
// records, scoped to a service of a cluster.
type RoleConfigGroupRepository struct{ db *gorm.DB }

func NewRoleConfigGroupRepository(db *gorm.DB) *RoleConfigGroupRepository {
	return &RoleConfigGroupRepository{db: db}
}

// Create inserts new group records in one transaction. Returns
// ErrRoleConfigGroupExists when any group name is already taken within the
// cluster/service scope.
func (r *RoleConfigGroupRepository) Create(ctx context.Context, recs []RoleConfigGroupRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recs {
			rec := &recs[i]
			if rec.ID == "" {
				rec.ID = uuid.NewString()
			}
			var count int64
			if err := tx.Model(&RoleConfigGroupRecord{}).
				Where("cluster_name = ? AND service_name = ? AND name = ?", rec.ClusterName, rec.ServiceName, rec.Name).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrRoleConfigGroupExists
			}
			if err := tx.Create(rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Get fetches a group by name within the cluster/service scope.
func (r *RoleConfigGroupRepository) Get(ctx context.Context, cluster, service, name string) (*RoleConfigGroupRecord, error) {
	var rec RoleConfigGroupRecord
	err := r.db.WithContext(ctx).
		First(&rec, "cluster_name = ? AND service_name = ? AND name = ?", cluster, service, name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleConfigGroupNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns all groups of a service ordered by name.
func (r *RoleConfigGroupRepository) List(ctx context.Context, cluster, service string) ([]RoleConfigGroupRecord, error) {
	var recs []RoleConfigGroupRecord
	err := r.db.WithContext(ctx).
		Where("cluster_name = ? AND service_name = ?", cluster, service).
		Order("name ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Update overwrites the mutable fields of the named group and returns the
// updated record. The role type of an existing group cannot change.
func (r *RoleConfigGroupRepository) Update(ctx context.Context, cluster, service, name string, rec *RoleConfigGroupRecord) (*RoleConfigGroupRecord, error) {
	existing, err := r.Get(ctx, cluster, service, name)
	if err != nil {
		return nil, err
	}
	if rec.RoleType != "" && rec.RoleType != existing.RoleType {
		return nil, ErrRoleTypeMismatch
	}

	updates := map[string]any{
		"display_name": rec.DisplayName,
		"config":       rec.Config,
	}
	if err := r.db.WithContext(ctx).Model(&RoleConfigGroupRecord{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, cluster, service, name)
}

// Delete removes the named group and returns the deleted record. Base groups
// cannot be deleted; member roles fall back to the base group of their type.
func (r *RoleConfigGroupRepository) Delete(ctx context.Context, cluster, service, name string) (*RoleConfigGroupRecord, error) {
	rec, err := r.Get(ctx, cluster, service, name)
	if err != nil {
		return nil, err
	}
	if rec.Base {
		return nil, ErrBaseGroupImmutable
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var base RoleConfigGroupRecord
		err := tx.First(&base, "cluster_name = ? AND service_name = ? AND role_type = ? AND base = ?",
			cluster, service, rec.RoleType, true).Error
		if err == nil {
			err = tx.Model(&RoleRecord{}).
				Where("cluster_name = ? AND service_name = ? AND group_name = ?", cluster, service, name).
				Update("group_name", base.Name).Error
			if err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&RoleConfigGroupRecord{}, "id = ?", rec.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRoles returns all roles of a service ordered by name.
func (r *RoleConfigGroupRepository) ListRoles(ctx context.Context, cluster, service string) ([]RoleRecord, error) {
	var recs []RoleRecord
	err := r.db.WithContext(ctx).
		Where("cluster_name = ? AND service_name = ?", cluster, service).
		Order("name ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// CreateRole inserts a single role record, used to seed services with roles.
func (r *RoleConfigGroupRepository) CreateRole(ctx context.Context, rec *RoleRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

// MoveRoles reassigns the named roles to the given group and returns the
// moved role records. All roles must exist within the same service and their
// role type must match the destination group's role type; on any violation
// the whole move is rolled back.
func (r *RoleConfigGroupRepository) MoveRoles(ctx context.Context, cluster, service, group string, roleNames []string) ([]RoleRecord, error) {
	dest, err := r.Get(ctx, cluster, service, group)
	if err != nil {
		return nil, err
	}

	moved := make([]RoleRecord, 0, len(roleNames))
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, roleName := range roleNames {
			var role RoleRecord
			err := tx.First(&role, "cluster_name = ? AND service_name = ? AND name = ?", cluster, service, roleName).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrRoleNotFound
				}
				return err
			}
			if role.RoleType != dest.RoleType {
				return ErrRoleTypeMismatch
			}
			if err := tx.Model(&RoleRecord{}).Where("id = ?", role.ID).Update("group_name", dest.Name).Error; err != nil {
				return err
			}
			role.GroupName = dest.Name
			moved = append(moved, role)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}
