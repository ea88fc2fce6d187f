package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airops/api"
	"github.com/Domenick1991/airops/config"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const swaggerDocument = "airops.swagger.json"

// Handlers are the REST resources mounted under /api/v1.
type Handlers struct {
	Flights      *api.FlightHandler
	Planes       *api.PlaneHandler
	Seats        *api.SeatHandler
	News         *api.NewsHandler
	Users        *api.UserHandler
	Transactions *api.TransactionHandler
	Auth         *api.AuthHandler
}

// Deps are the cross-cutting pieces the router needs.
type Deps struct {
	Tokens   api.TokenParser
	Log      logger.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
	conn       *grpc.ClientConn
}

// Run starts the gRPC health server and the HTTP server and blocks until ctx
// is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, handlers Handlers, deps Deps) error {
	s, err := newServers(cfg, handlers, deps)
	if err != nil {
		return err
	}
	defer s.conn.Close()

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	deps.Log.Info("servers started", "http", cfg.HTTP.Address, "grpc", cfg.GRPC.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.health.Shutdown()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.grpcServer.GracefulStop()
		return nil
	}
}

func newServers(cfg *config.Config, handlers Handlers, deps Deps) (*Servers, error) {
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	conn, err := grpc.NewClient(dialTarget(cfg.GRPC.Address), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial gRPC health: %w", err)
	}
	gateway := runtime.NewServeMux(runtime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))

	router := NewRouter(cfg, handlers, deps)
	router.GET("/healthz", gin.WrapH(gateway))

	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSeconds) * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		health:     healthSrv,
		httpServer: httpSrv,
		conn:       conn,
	}, nil
}

// NewRouter builds the gin engine with middleware, /metrics, the API docs and
// every resource under /api/v1.
func NewRouter(cfg *config.Config, handlers Handlers, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(deps.Log))
	if deps.Metrics != nil {
		router.Use(api.Metrics(deps.Metrics))
	}
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/"+swaggerDocument))))
	}

	v1 := router.Group("/api/v1", api.Authenticate(deps.Tokens))
	handlers.Auth.Register(v1.Group("/auth"))
	handlers.Flights.Register(v1.Group("/flight"))
	handlers.Planes.Register(v1.Group("/plane"))
	handlers.Seats.Register(v1.Group("/seat"))
	handlers.News.Register(v1.Group("/news"))
	handlers.Users.Register(v1.Group("/user"))
	handlers.Transactions.Register(v1.Group("/transaction"))

	return router
}

// dialTarget turns a listen address such as ":9090" into something a client
// can dial.
func dialTarget(address string) string {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host != "" {
		return address
	}
	return net.JoinHostPort("localhost", port)
}
