package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "painting_crm/docs"
	"painting_crm/internal/adapter/http/handlers"
	"painting_crm/internal/adapter/http/middleware"
	"painting_crm/internal/infrastructure/metrics"
	"painting_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases and infrastructure the router wires into
// handlers. Metrics may be nil.
type Dependencies struct {
	KPIs      usecase.IKPIUseCase
	Estimates usecase.IEstimateUseCase
	Metrics   *metrics.Recorder
	Logger    *zap.Logger
}

func NewRouter(d Dependencies) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, d)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	kpiHandler := handlers.NewKPIHandler(d.KPIs, d.Logger)
	estimateHandler := handlers.NewEstimateHandler(d.Estimates)

	api := router.Group("/api")
	addPingRoutes(api)
	addKPIRoutes(api, kpiHandler)
	addEstimateRoutes(api, estimateHandler)

	return router
}

// Run serves router on addr until ctx is cancelled, then drains in-flight
// requests.
func Run(ctx context.Context, addr string, router http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func setMiddlewares(router *gin.Engine, d Dependencies) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Organization())
	router.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
	}
	router.Use(middleware.Recovery(d.Logger))
}
