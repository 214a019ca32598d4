package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// groupScope reads the common path parameters of the role config group routes
// and records them on the span.
func groupScope(ct *gin.Context, span trace.Span) (cluster, service string) {
	cluster = ct.Param("clusterName")
	service = ct.Param("serviceName")
	span.SetAttributes(
		attribute.String("cluster.name", cluster),
		attribute.String("service.name", service),
	)
	return cluster, service
}

// listRoleConfigGroups returns all role config groups of a service.
// @Summary       List role config groups
// @Description   Returns all role config groups of a service wrapped in a collection envelope
// @Tags          roleConfigGroups
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string  true  "Cluster name"
// @Param         serviceName  path      string  true  "Service name"
// @Success       200  {object}  models.RoleConfigGroupList "OK - The groups of the service"
// @Failure       404  {object}  models.ErrorResponse       "Not Found - No such cluster"
// @Router        /api/v14/clusters/{clusterName}/services/{serviceName}/roleConfigGroups [get]
func (s *ManagerServer) listRoleConfigGroups(ct *gin.Context) {
	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.listRoleConfigGroups")
	defer span.End()
	cluster, service := groupScope(ct, span)

	list, err := s.svc.ListRoleConfigGroups(ctx, cluster, service)
	if err != nil {
		span.SetStatus(codes.Error, "error listing role config groups")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error listing role config groups",
			zap.String("cluster", cluster), zap.String("service", service))
		writeHumaneError(ct, err, http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("groups.count", len(list.Values())))
	respond(ct, http.StatusOK, list)
}

// createRoleConfigGroups creates new groups within a service.
// @Summary       Create role config groups
// @Description   Creates the groups given in the request envelope and returns them
// @Tags          roleConfigGroups
// @Accept        application/json
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string                     true  "Cluster name"
// @Param         serviceName  path      string                     true  "Service name"
// @Param         body         body      models.RoleConfigGroupList true  "Groups to create"
// @Success       200  {object}  models.RoleConfigGroupList "OK - The created groups"
// @Failure       400  {object}  models.ErrorResponse       "Bad Request - Malformed body or missing name or roleType"
// @Failure       404  {object}  models.ErrorResponse       "Not Found - No such cluster"
// @Failure       409  {object}  models.ErrorResponse       "Conflict - A group with the same name already exists"
// @Router        /api/v14/clusters/{clusterName}/services/{serviceName}/roleConfigGroups [post]
func (s *ManagerServer) createRoleConfigGroups(ct *gin.Context) {
	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.createRoleConfigGroups")
	defer span.End()
	cluster, service := groupScope(ct, span)

	var body models.RoleConfigGroupList
	if err := ct.ShouldBindJSON(&body); err != nil {
		span.SetStatus(codes.Error, "error binding request body")
		span.RecordError(err)
		ct.JSON(http.StatusBadRequest, models.NewErrorResponse("Invalid role config group list in request body", err))
		return
	}

	created, herr := s.svc.CreateRoleConfigGroups(ctx, cluster, service, body)
	if herr != nil {
		span.SetStatus(codes.Error, "error creating role config groups")
		span.RecordError(herr)
		otelzap.L().WithError(herr).ErrorContext(ctx, "Error creating role config groups",
			zap.String("cluster", cluster), zap.String("service", service))
		writeHumaneError(ct, herr, http.StatusInternalServerError)
		return
	}

	respond(ct, http.StatusOK, created)
}

// getRoleConfigGroup returns a single group by name.
// @Summary       Get a role config group
// @Description   Returns the named role config group of a service
// @Tags          roleConfigGroups
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string  true  "Cluster name"
// @Param         serviceName  path      string  true  "Service name"
// @Param         groupName    path      string  true  "Group name"
// @Success       200  {object}  models.RoleConfigGroup "OK - The group"
// @Failure       404  {object}  models.ErrorResponse   "Not Found - No such cluster or group"
// @Router        /api/v14/clusters/{clusterName}/services/{serviceName}/roleConfigGroups/{groupName} [get]
func (s *ManagerServer) getRoleConfigGroup(ct *gin.Context) {
	name := ct.Param("groupName")

	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.getRoleConfigGroup")
	defer span.End()
	cluster, service := groupScope(ct, span)
	span.SetAttributes(attribute.String("group.name", name))

	group, err := s.svc.GetRoleConfigGroup(ctx, cluster, service, name)
	if err != nil {
		span.SetStatus(codes.Error, "error getting role config group")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error getting role config group",
			zap.String("cluster", cluster), zap.String("service", service), zap.String("group", name))
		writeHumaneError(ct, err, http.StatusInternalServerError)
		return
	}

	respond(ct, http.StatusOK, group)
}

// updateRoleConfigGroup updates the named group.
// @Summary       Update a role config group
// @Description   Updates the display name and config of the named group and returns its new state. The role type of an existing group cannot change.
// @Tags          roleConfigGroups
// @Accept        application/json
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string                 true  "Cluster name"
// @Param         serviceName  path      string                 true  "Service name"
// @Param         groupName    path      string                 true  "Group name"
// @Param         body         body      models.RoleConfigGroup true  "New group state"
// @Success       200  {object}  models.RoleConfigGroup "OK - The updated group"
// @Failure       400  {object}  models.ErrorResponse   "Bad Request - Malformed body or role type change"
// @Failure       404  {object}  models.ErrorResponse   "Not Found - No such cluster or group"
// @Router        /api/v14/clusters/{clusterName}/services/{serviceName}/roleConfigGroups/{groupName} [put]
func (s *ManagerServer) updateRoleConfigGroup(ct *gin.Context) {
	name := ct.Param("groupName")

	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.updateRoleConfigGroup")
	defer span.End()
	cluster, service := groupScope(ct, span)
	span.SetAttributes(attribute.String("group.name", name))

	var body models.RoleConfigGroup
	if err := ct.ShouldBindJSON(&body); err != nil {
		span.SetStatus(codes.Error, "error binding request body")
		span.RecordError(err)
		ct.JSON(http.StatusBadRequest, models.NewErrorResponse("Invalid role config group in request body", err))
		return
	}

	updated, herr := s.svc.UpdateRoleConfigGroup(ctx, cluster, service, name, body)
	if herr != nil {
		span.SetStatus(codes.Error, "error updating role config group")
		span.RecordError(herr)
		otelzap.L().WithError(herr).ErrorContext(ctx, "Error updating role config group",
			zap.String("cluster", cluster), zap.String("service", service), zap.String("group", name))
		writeHumaneError(ct, herr, http.StatusInternalServerError)
		return
	}

	respond(ct, http.StatusOK, updated)
}

// deleteRoleConfigGroup removes the named group.
// @Summary       Delete a role config group
// @Description   Removes the named group and returns its last state. Base groups cannot be deleted; member roles fall back to the base group of their type.
// @Tags          roleConfigGroups
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string  true  "Cluster name"
// @Param         serviceName  path      string  true  "Service name"
// @Param         groupName    path      string  true  "Group name"
// @Success       200  {object}  models.RoleConfigGroup "OK - The deleted group"
// @Failure       400  {object}  models.ErrorResponse   "Bad Request - The group is a base group"
// @Failure       404  {object}  models.ErrorResponse   "Not Found - No such cluster or group"
// @Router        /api/v14/clusters/{clusterName}/services/{serviceName}/roleConfigGroups/{groupName} [delete]
func (s *ManagerServer) deleteRoleConfigGroup(ct *gin.Context) {
	name := ct.Param("groupName")

	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.deleteRoleConfigGroup")
	defer span.End()
	cluster, service := groupScope(ct, span)
	span.SetAttributes(attribute.String("group.name", name))

	deleted, err := s.svc.DeleteRoleConfigGroup(ctx, cluster, service, name)
	if err != nil {
		span.SetStatus(codes.Error, "error deleting role config group")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error deleting role config group",
			zap.String("cluster", cluster), zap.String("service", service), zap.String("group", name))
		writeHumaneError(ct, err, http.StatusInternalServerError)
		return
	}

	respond(ct, http.StatusOK, deleted)
}

// moveRoles reassigns roles to the named group.
// @Summary       Move roles into a role config group
// @Description   Reassigns the named roles to the group and returns the moved roles. Roles can only move to a group whose role type matches their own; on any violation nothing moves.
// @Tags          roleConfigGroups
// @Accept        application/json
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string              true  "Cluster name"
// @Param         serviceName  path      string              true  "Service name"
// @Param         groupName    path      string              true  "Destination group name"
// @Param         body         body      models.RoleNameList true  "Names of the roles to move"
// @Success       200  {object}  models.RoleList      "OK - The moved roles"
// @Failure       400  {object}  models.ErrorResponse "Bad Request - Malformed body or role type mismatch"
// @Failure       404  {object}  models.ErrorResponse "Not Found - No such cluster, group or role"
// @Router        /api/v14/clusters/{clusterName}/services/{serviceName}/roleConfigGroups/{groupName}/roles [put]
func (s *ManagerServer) moveRoles(ct *gin.Context) {
	name := ct.Param("groupName")

	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.moveRoles")
	defer span.End()
	cluster, service := groupScope(ct, span)
	span.SetAttributes(attribute.String("group.name", name))

	var body models.RoleNameList
	if err := ct.ShouldBindJSON(&body); err != nil {
		span.SetStatus(codes.Error, "error binding request body")
		span.RecordError(err)
		ct.JSON(http.StatusBadRequest, models.NewErrorResponse("Invalid role name list in request body", err))
		return
	}

	span.SetAttributes(attribute.Int("roles.count", len(body.Values())))

	moved, herr := s.svc.MoveRoles(ctx, cluster, service, name, body)
	if herr != nil {
		span.SetStatus(codes.Error, "error moving roles")
		span.RecordError(herr)
		otelzap.L().WithError(herr).ErrorContext(ctx, "Error moving roles",
			zap.String("cluster", cluster), zap.String("service", service), zap.String("group", name))
		writeHumaneError(ct, herr, http.StatusInternalServerError)
		return
	}

	respond(ct, http.StatusOK, moved)
}
