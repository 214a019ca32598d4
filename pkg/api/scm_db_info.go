package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// getScmDbInfo reports the service's own database connection. Introduced in
// API v14; older version prefixes do not serve it.
// @Summary       Get management database info
// @Description   Returns the connection information of the service's own database. Fails with 503 when the database is unreachable; never reports a default record in that case.
// @Tags          tools
// @Produce       application/json
// @Produce       application/xml
// @Success       200  {object}  models.ScmDbInfo     "OK - Database connection information"
// @Failure       503  {object}  models.ErrorResponse "Service Unavailable - The management database is unreachable"
// @Router        /api/v14/cm/scmDbInfo [get]
func (s *ManagerServer) getScmDbInfo(ct *gin.Context) {
	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.getScmDbInfo")
	defer span.End()

	info, err := s.svc.GetScmDbInfo(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "error getting db info")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error getting management database info")
		writeHumaneError(ct, err, http.StatusServiceUnavailable)
		return
	}

	span.SetAttributes(
		attribute.String("db.type", string(info.Type)),
		attribute.Bool("db.embedded", info.EmbeddedDbUsed),
	)
	respond(ct, http.StatusOK, info)
}
