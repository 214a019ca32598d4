package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/clusterman/internal/utils"
	"github.com/spechtlabs/clusterman/pkg/manager"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// API route constants define the URL paths of the management REST API.
const (
	// ApiRouteV12 is the base path of the v12 API.
	ApiRouteV12 = "/api/v12"
	// ApiRouteV14 is the base path of the v14 API.
	ApiRouteV14 = "/api/v14"

	// VersionRoute reports the service build information.
	VersionRoute = "/cm/version"
	// EchoRoute echoes a message back to the caller.
	EchoRoute = "/tools/echo"
	// EchoErrorRoute always fails with the caller's message.
	EchoErrorRoute = "/tools/echoError"
	// ClustersRoute is the cluster collection.
	ClustersRoute = "/clusters"
	// ClusterRoute is a single named cluster.
	ClusterRoute = "/clusters/:clusterName"
	// RoleConfigGroupsRoute is the group collection of a service.
	RoleConfigGroupsRoute = "/clusters/:clusterName/services/:serviceName/roleConfigGroups"
	// RoleConfigGroupRoute is a single named group.
	RoleConfigGroupRoute = "/clusters/:clusterName/services/:serviceName/roleConfigGroups/:groupName"
	// RoleConfigGroupRolesRoute holds the member roles of a group.
	RoleConfigGroupRolesRoute = "/clusters/:clusterName/services/:serviceName/roleConfigGroups/:groupName/roles"
	// ScmDbInfoRoute reports the service's own database connection. v14 only.
	ScmDbInfoRoute = "/cm/scmDbInfo"
)

// ManagerServer is the HTTP front of the cluster management API. It mounts
// the same operation set under every supported API version prefix; newer
// versions add routes on top of the older set.
//
// The gin router carries the usual observability middlewares (otelgin
// tracing, ginzap logging, prometheus metrics).
//
// 1. Create the server with NewManagerServer()
// 2. Load routes with LoadApiRoutes()
// 3. Serve the Engine() with an http.Server of your choosing
type ManagerServer struct {
	router           *gin.Engine
	tracer           trace.Tracer
	sharedPrometheus *ginprometheus.Prometheus

	svc manager.ResourceV14
}

// NewManagerServer creates a new ManagerServer with the provided options.
// Routes are not registered until LoadApiRoutes is called.
func NewManagerServer(opts ...Option) *ManagerServer {
	srv := &ManagerServer{
		router:           nil,
		tracer:           otel.Tracer("clusterman"),
		sharedPrometheus: nil,
		svc:              nil,
	}

	for _, opt := range opts {
		opt(srv)
	}

	if srv.sharedPrometheus == nil {
		srv.sharedPrometheus = ginprometheus.NewPrometheus("clusterman_server")
	}

	srv.router = utils.NewO11yGin("clusterman_server", srv.sharedPrometheus)

	srv.loadStaticRoutes()
	return srv
}

// loadStaticRoutes registers the Swagger UI.
func (s *ManagerServer) loadStaticRoutes() {
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}

// LoadApiRoutes registers every API version group with the server. It must be
// called before serving. It returns an error if svc is nil.
//
// Versioning is additive: /api/v14 serves every /api/v12 operation plus the
// v14 additions, so clients pin a version prefix and never lose operations by
// upgrading.
func (s *ManagerServer) LoadApiRoutes(svc manager.ResourceV14) humane.Error {
	if svc == nil {
		return humane.New("manager service not configured", "Provide a manager.ResourceV14 to LoadApiRoutes")
	}
	s.svc = svc

	v12 := s.router.Group(ApiRouteV12)
	s.mountV12(v12)

	v14 := s.router.Group(ApiRouteV14)
	s.mountV12(v14)
	s.mountV14(v14)

	return nil
}

// mountV12 registers the v12 operation set on a version group.
func (s *ManagerServer) mountV12(g *gin.RouterGroup) {
	g.GET(VersionRoute, s.getVersion)
	g.GET(EchoRoute, s.echo)
	g.GET(EchoErrorRoute, s.echoError)

	g.GET(ClustersRoute, s.listClusters)
	g.POST(ClustersRoute, s.addClusters)
	g.GET(ClusterRoute, s.getCluster)
	g.PUT(ClusterRoute, s.updateCluster)
	g.DELETE(ClusterRoute, s.deleteCluster)

	g.GET(RoleConfigGroupsRoute, s.listRoleConfigGroups)
	g.POST(RoleConfigGroupsRoute, s.createRoleConfigGroups)
	g.GET(RoleConfigGroupRoute, s.getRoleConfigGroup)
	g.PUT(RoleConfigGroupRoute, s.updateRoleConfigGroup)
	g.DELETE(RoleConfigGroupRoute, s.deleteRoleConfigGroup)
	g.PUT(RoleConfigGroupRolesRoute, s.moveRoles)
}

// mountV14 registers the operations introduced in v14.
func (s *ManagerServer) mountV14(g *gin.RouterGroup) {
	g.GET(ScmDbInfoRoute, s.getScmDbInfo)
}

// Engine returns the underlying gin.Engine for embedding and tests.
func (s *ManagerServer) Engine() *gin.Engine { return s.router }
