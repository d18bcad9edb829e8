package main

import (
	"os/signal"
	"syscall"

	"painting_crm/internal/adapter/http/routes"
	"painting_crm/internal/domain/financials"
	"painting_crm/internal/infrastructure/metrics"
	"painting_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			repos, closeFn, err := a.repositories(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeFn(); err != nil {
					a.logger.Warn("close store", zap.Error(err))
				}
			}()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			recorder, err := metrics.NewRecorder(reg)
			if err != nil {
				return err
			}

			estimates, err := usecase.NewEstimateUseCase(financials.Guardrails{
				TargetMargin: a.cfg.MarginTarget,
				FloorMargin:  a.cfg.MarginFloor,
			}, a.logger)
			if err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			router := routes.NewRouter(routes.Dependencies{
				KPIs:      usecase.NewKPIUseCase(repos, recorder, a.logger),
				Estimates: estimates,
				Metrics:   recorder,
				Logger:    a.logger,
			})

			return routes.Run(ctx, ":"+a.cfg.Port, router, a.logger)
		},
	}
}
