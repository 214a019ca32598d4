package storage

import (
	"errors"
	"time"
)

// Sentinel errors returned by the repositories. The API layer maps these to
// HTTP statuses, so they must be reachable through error cause chains.
var (
	ErrClusterNotFound         = errors.New("cluster not found")
	ErrClusterExists           = errors.New("cluster already exists")
	ErrRoleConfigGroupNotFound = errors.New("role config group not found")
	ErrRoleConfigGroupExists   = errors.New("role config group already exists")
	ErrBaseGroupImmutable      = errors.New("base role config group cannot be deleted")
	ErrRoleNotFound            = errors.New("role not found")
	ErrRoleTypeMismatch        = errors.New("role type does not match group role type")
)

// ClusterRecord is the persistence model for a managed cluster.
// Table name: clusters
type ClusterRecord struct {
	ID          string    `gorm:"primaryKey;type:text;not null"`
	Name        string    `gorm:"type:text;not null;uniqueIndex"`
	DisplayName string    `gorm:"type:text"`
	FullVersion string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ClusterRecord) TableName() string { return "clusters" }

// RoleConfigGroupRecord is the persistence model for a role config group.
// Groups are scoped to a service of a cluster; the group name is unique
// within that scope.
// Table name: role_config_groups
type RoleConfigGroupRecord struct {
	ID          string    `gorm:"primaryKey;type:text;not null"`
	ClusterName string    `gorm:"type:text;not null;uniqueIndex:idx_group_scope_name;index"`
	ServiceName string    `gorm:"type:text;not null;uniqueIndex:idx_group_scope_name"`
	Name        string    `gorm:"type:text;not null;uniqueIndex:idx_group_scope_name"`
	DisplayName string    `gorm:"type:text"`
	RoleType    string    `gorm:"type:text;not null"`
	Base        bool      `gorm:"not null"`
	Config      string    `gorm:"type:text"` // JSON encoded []models.ConfigEntry
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (RoleConfigGroupRecord) TableName() string { return "role_config_groups" }

// RoleRecord is the persistence model for a role instance. Each role is a
// member of exactly one role config group of its own role type.
// Table name: roles
type RoleRecord struct {
	ID          string    `gorm:"primaryKey;type:text;not null"`
	ClusterName string    `gorm:"type:text;not null;uniqueIndex:idx_role_scope_name;index"`
	ServiceName string    `gorm:"type:text;not null;uniqueIndex:idx_role_scope_name"`
	Name        string    `gorm:"type:text;not null;uniqueIndex:idx_role_scope_name"`
	RoleType    string    `gorm:"type:text;not null"`
	GroupName   string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (RoleRecord) TableName() string { return "roles" }
