package models

import "encoding/xml"

// ScmDbType enumerates the database backends the management service can run
// against.
type ScmDbType string

const (
	ScmDbSQLite   ScmDbType = "SQLITE3"
	ScmDbPostgres ScmDbType = "POSTGRESQL"
	ScmDbMySQL    ScmDbType = "MYSQL"
)

// ScmDbInfo describes the management service's own database connection. It is
// returned by the read-only db-info endpoint introduced in API v14 and is
// only ever populated from a live, reachable database.
// @Description Database connection information of the management service
type ScmDbInfo struct {
	XMLName xml.Name `json:"-" xml:"scmDbInfo"`

	// Type is the database backend in use.
	Type ScmDbType `json:"scmDbType" xml:"scmDbType"`

	// Host is the database host, empty for embedded databases.
	Host string `json:"scmDbHost,omitempty" xml:"scmDbHost,omitempty"`

	// Name is the database name or, for embedded databases, the datasource.
	Name string `json:"scmDbName" xml:"scmDbName"`

	// EmbeddedDbUsed reports whether the service runs on its embedded
	// database rather than an external one.
	EmbeddedDbUsed bool `json:"embeddedDbUsed" xml:"embeddedDbUsed"`
}
