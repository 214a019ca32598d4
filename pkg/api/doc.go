// Package api exposes the versioned cluster management REST API over gin.
package api

// @title Clusterman API
// @version 1.0
// @description REST API for managing clusters, services and role config groups.
// @contact.name Specht Labs
// @contact.url specht-labs.de
// @contact.email clusterman@specht-labs.de
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /api/v14

import (
	"github.com/spechtlabs/clusterman/pkg/models"
)

// This file ensures all models are included in Swag documentation
var (
	_ = models.ErrorResponse{}
	_ = models.ClusterList{}
	_ = models.RoleConfigGroupList{}
	_ = models.ScmDbInfo{}
)
