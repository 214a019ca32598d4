package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// getVersion reports the running service build information.
// @Summary       Get service version
// @Description   Returns the version, commit and build date of the running management service
// @Tags          tools
// @Produce       application/json
// @Produce       application/xml
// @Success       200  {object}  models.VersionInfo   "OK - Version information"
// @Failure       500  {object}  models.ErrorResponse "Internal Server Error"
// @Router        /api/v14/cm/version [get]
func (s *ManagerServer) getVersion(ct *gin.Context) {
	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.getVersion")
	defer span.End()

	info, err := s.svc.GetVersion(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "error getting version")
		span.RecordError(err)
		otelzap.L().WithError(err).ErrorContext(ctx, "Error getting version")
		writeHumaneError(ct, err, http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("version.version", info.Version))
	respond(ct, http.StatusOK, info)
}

// echo returns the caller's message unchanged.
// @Summary       Echo a message
// @Description   Returns the given message unchanged; useful to verify connectivity and serialization
// @Tags          tools
// @Produce       application/json
// @Produce       application/xml
// @Param         message  query     string  false  "Message to echo"  default(Hello, World!)
// @Success       200      {object}  models.EchoMessage   "OK - The echoed message"
// @Router        /api/v14/tools/echo [get]
func (s *ManagerServer) echo(ct *gin.Context) {
	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.echo")
	defer span.End()

	message := ct.DefaultQuery("message", "Hello, World!")
	span.SetAttributes(attribute.String("echo.message", message))

	msg, err := s.svc.Echo(ctx, message)
	if err != nil {
		span.SetStatus(codes.Error, "error echoing message")
		span.RecordError(err)
		writeHumaneError(ct, err, http.StatusInternalServerError)
		return
	}

	respond(ct, http.StatusOK, msg)
}

// echoError always fails with the caller's message.
// @Summary       Echo an error
// @Description   Always fails with the given message; useful to verify client-side error handling
// @Tags          tools
// @Produce       application/json
// @Param         message  query     string  false  "Error message to return"  default(Default error message)
// @Failure       500      {object}  models.ErrorResponse  "Internal Server Error - Always"
// @Router        /api/v14/tools/echoError [get]
func (s *ManagerServer) echoError(ct *gin.Context) {
	ctx, span := s.tracer.Start(ct.Request.Context(), "ManagerServer.echoError")
	defer span.End()

	message := ct.DefaultQuery("message", "Default error message")
	span.SetAttributes(attribute.String("echo.message", message))

	err := s.svc.EchoError(ctx, message)
	span.SetStatus(codes.Error, "echoed error")
	writeHumaneError(ct, err, http.StatusInternalServerError)
}
