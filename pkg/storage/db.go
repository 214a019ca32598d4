// Package storage is the relational persistence layer of clusterman. It
// stores cluster and role config group records in an embedded SQLite
// database through GORM.
package storage

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultDSN is used when a sqlite URL carries no datasource.
const DefaultDSN = "./clusterman.db"

// ParseURL splits a db-url of the form scheme:dsn into its parts.
// Supported schemes are "sqlite" and its alias "sqlite3".
func ParseURL(dbURL string) (scheme string, dsn string, err error) {
	switch {
	case strings.HasPrefix(dbURL, "sqlite:"):
		scheme, dsn = "sqlite", strings.TrimPrefix(dbURL, "sqlite:")
	case strings.HasPrefix(dbURL, "sqlite3:"):
		scheme, dsn = "sqlite", strings.TrimPrefix(dbURL, "sqlite3:")
	default:
		return "", "", fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
	if dsn == "" {
		dsn = DefaultDSN
	}
	return scheme, dsn, nil
}

// OpenFromURL opens a GORM DB based on a simple db-url string.
// Supported:
//   - sqlite:<dsn>   e.g., sqlite:./clusterman.db or sqlite::memory:
//   - sqlite3:<dsn>  alias of sqlite
func OpenFromURL(dbURL string) (*gorm.DB, error) {
	_, dsn, err := ParseURL(dbURL)
	if err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// AutoMigrate applies schema migrations for all storage models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&ClusterRecord{}, &RoleConfigGroupRecord{}, &RoleRecord{})
}
