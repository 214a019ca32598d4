package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClusterRepository provides CRUD access to cluster records.
type ClusterRepository struct{ db *gorm.DB }

func NewClusterRepository(db *gorm.DB) *ClusterRepository { return &ClusterRepository{db: db} }

// Create inserts a new cluster record. The record ID is assigned here when
// empty. Returns ErrClusterExists when a cluster with the same name exists.
func (r *ClusterRepository) Create(ctx context.Context, rec *ClusterRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&ClusterRecord{}).Where("name = ?", rec.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrClusterExists
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

// Get fetches a cluster record by name.
func (r *ClusterRepository) Get(ctx context.Context, name string) (*ClusterRecord, error) {
	var rec ClusterRecord
	if err := r.db.WithContext(ctx).First(&rec, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClusterNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns all cluster records ordered by name.
func (r *ClusterRepository) List(ctx context.Context) ([]ClusterRecord, error) {
	var recs []ClusterRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Update overwrites the mutable fields of the named cluster and returns the
// updated record.
func (r *ClusterRepository) Update(ctx context.Context, name string, rec *ClusterRecord) (*ClusterRecord, error) {
	existing, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"display_name": rec.DisplayName,
		"full_version": rec.FullVersion,
	}
	if err := r.db.WithContext(ctx).Model(&ClusterRecord{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, name)
}

// Delete removes the named cluster and all records scoped to it, returning
// the deleted cluster record.
func (r *ClusterRepository) Delete(ctx context.Context, name string) (*ClusterRecord, error) {
	rec, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&RoleRecord{}, "cluster_name = ?", name).Error; err != nil {
			return err
		}
		if err := tx.Delete(&RoleConfigGroupRecord{}, "cluster_name = ?", name).Error; err != nil {
			return err
		}
		return tx.Delete(&ClusterRecord{}, "id = ?", rec.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
