package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/chart"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/dashboard"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/goal"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/report"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Database Pinger

	ExpiringWithinDays int
}

// Handler builds the huma API with every route registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Finance Tracker API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler(r.Database).Register(api)
	dashboard.NewHandler(r.Service.Dashboard).Register(api)
	chart.NewHandler(r.Service.Chart).Register(api)
	report.NewHandler(r.Service.Report).Register(api)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewModifyTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	category.NewHandler(r.Service.Category).Register(api)

	goal.NewCreateGoalHandler(r.Service.Goal).Register(api)
	goal.NewUpdateGoalHandler(r.Service.Goal).Register(api)
	goal.NewListGoalsHandler(r.Service.Goal).Register(api)
	goal.NewNotificationsHandler(r.Service.Notification, r.ExpiringWithinDays).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
