package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// listClusters returns all managed clusters.
// @Summary       List clusters
// @Description   Returns all managed clusters wrapped in a collection envelope. An empty deployment yields an empty items array, never null.
// @Tags          clusters
// @Produce       application/json
// @Produce       application/xml
// @Success       200  {object}  models.ClusterList   "OK - All managed clusters"
// @Failure       500  {object}  models.ErrorResponse "Internal Server Error"
// @Router        /api/v14/clusters [get]
func (s *ManagerServer) listClusters(ct *gin.Context) {
	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.listClusters")
	defer span.End()

	list, err := s.svc.ListClusters(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "error listing clusters")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error listing clusters")
		writeHumaneError(ct, err, http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("clusters.count", len(list.Values())))
	respond(ct, http.StatusOK, list)
}

// addClusters registers new clusters.
// @Summary       Add clusters
// @Description   Registers the clusters given in the request envelope and returns them with server-assigned fields populated
// @Tags          clusters
// @Accept        application/json
// @Produce       application/json
// @Produce       application/xml
// @Param         body  body      models.ClusterList   true  "Clusters to add"
// @Success       200   {object}  models.ClusterList   "OK - The created clusters"
// @Failure       400   {object}  models.ErrorResponse "Bad Request - Malformed body or missing cluster name"
// @Failure       409   {object}  models.ErrorResponse "Conflict - A cluster with the same name already exists"
// @Router        /api/v14/clusters [post]
func (s *ManagerServer) addClusters(ct *gin.Context) {
	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.addClusters")
	defer span.End()

	var body models.ClusterList
	if err := ct.ShouldBindJSON(&body); err != nil {
		span.SetStatus(codes.Error, "error binding request body")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error binding cluster list body")
		clusterOperations.WithLabelValues("add", "error").Inc()
		ct.JSON(http.StatusBadRequest, models.NewErrorResponse("Invalid cluster list in request body", err))
		return
	}

	span.SetAttributes(attribute.Int("clusters.count", len(body.Values())))

	created, herr := s.svc.AddClusters(ctx, body)
	if herr != nil {
		span.SetStatus(codes.Error, "error adding clusters")
		span.RecordError(herr)
		otelzap.L().WithError(herr).ErrorContext(ctx, "Error adding clusters")
		clusterOperations.WithLabelValues("add", "error").Inc()
		writeHumaneError(ct, herr, http.StatusInternalServerError)
		return
	}

	clusterOperations.WithLabelValues("add", "success").Inc()
	respond(ct, http.StatusOK, created)
}

// getCluster returns a single cluster by name.
// @Summary       Get a cluster
// @Description   Returns the named cluster
// @Tags          clusters
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string  true  "Cluster name"
// @Success       200  {object}  models.Cluster       "OK - The cluster"
// @Failure       404  {object}  models.ErrorResponse "Not Found - No such cluster"
// @Router        /api/v14/clusters/{clusterName} [get]
func (s *ManagerServer) getCluster(ct *gin.Context) {
	name := ct.Param("clusterName")

	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.getCluster")
	defer span.End()
	span.SetAttributes(attribute.String("cluster.name", name))

	cluster, err := s.svc.GetCluster(ctx, name)
	if err != nil {
		span.SetStatus(codes.Error, "error getting cluster")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error getting cluster", zap.String("cluster", name))
		writeHumaneError(ct, err, http.StatusInternalServerError)
		return
	}

	respond(ct, http.StatusOK, cluster)
}

// updateCluster updates the mutable fields of a cluster.
// @Summary       Update a cluster
// @Description   Updates the display name and version of the named cluster and returns its new state
// @Tags          clusters
// @Accept        application/json
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string          true  "Cluster name"
// @Param         body         body      models.Cluster  true  "New cluster state"
// @Success       200  {object}  models.Cluster       "OK - The updated cluster"
// @Failure       400  {object}  models.ErrorResponse "Bad Request - Malformed body"
// @Failure       404  {object}  models.ErrorResponse "Not Found - No such cluster"
// @Router        /api/v14/clusters/{clusterName} [put]
func (s *ManagerServer) updateCluster(ct *gin.Context) {
	name := ct.Param("clusterName")

	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.updateCluster")
	defer span.End()
	span.SetAttributes(attribute.String("cluster.name", name))

	var body models.Cluster
	if err := ct.ShouldBindJSON(&body); err != nil {
		span.SetStatus(codes.Error, "error binding request body")
		span.RecordError(err)
		clusterOperations.WithLabelValues("update", "error").Inc()
		ct.JSON(http.StatusBadRequest, models.NewErrorResponse("Invalid cluster in request body", err))
		return
	}

	updated, herr := s.svc.UpdateCluster(ctx, name, body)
	if herr != nil {
		span.SetStatus(codes.Error, "error updating cluster")
		span.RecordError(herr)
		otelzap.L().WithError(herr).ErrorContext(ctx, "Error updating cluster", zap.String("cluster", name))
		clusterOperations.WithLabelValues("update", "error").Inc()
		writeHumaneError(ct, herr, http.StatusInternalServerError)
		return
	}

	clusterOperations.WithLabelValues("update", "success").Inc()
	respond(ct, http.StatusOK, updated)
}

// deleteCluster removes a cluster.
// @Summary       Delete a cluster
// @Description   Removes the named cluster along with its role config groups and roles, and returns its last state
// @Tags          clusters
// @Produce       application/json
// @Produce       application/xml
// @Param         clusterName  path      string  true  "Cluster name"
// @Success       200  {object}  models.Cluster       "OK - The deleted cluster"
// @Failure       404  {object}  models.ErrorResponse "Not Found - No such cluster"
// @Router        /api/v14/clusters/{clusterName} [delete]
func (s *ManagerServer) deleteCluster(ct *gin.Context) {
	name := ct.Param("clusterName")

	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.deleteCluster")
	defer span.End()
	span.SetAttributes(attribute.String("cluster.name", name))

	deleted, err := s.svc.DeleteCluster(ctx, name)
	if err != nil {
		span.SetStatus(codes.Error, "error deleting cluster")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error deleting cluster", zap.String("cluster", name))
		clusterOperations.WithLabelValues("delete", "error").Inc()
		writeHumaneError(ct, err, http.StatusInternalServerError)
		return
	}

	clusterOperations.WithLabelValues("delete", "success").Inc()
	respond(ct, http.StatusOK, deleted)
}
