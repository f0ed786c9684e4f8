package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/handlers/v1/auth"
	"github.com/carson-networks/budget-web/internal/handlers/v1/route"
	"github.com/carson-networks/budget-web/internal/handlers/v1/status"
	"github.com/carson-networks/budget-web/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-web/internal/logging"
	"github.com/carson-networks/budget-web/internal/routing"
	"github.com/carson-networks/budget-web/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger             *logrus.Logger
	Port               string
	Service            *service.Service
	CORSAllowedOrigins []string
	// CookieMaxAge is the lifetime of the view-session cookie in seconds.
	CookieMaxAge int
}

// Router builds the navigation pages and the /v1 view API.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(logging.Middleware("BFF", r.Logger))
	router.Use(corsMiddleware(r.CORSAllowedOrigins))
	router.Use(viewSessionMiddleware(r.Service.Views, r.CookieMaxAge, r.Logger))

	pages := pageHandler(r.Logger)
	for _, view := range []routing.View{routing.ViewHome, routing.ViewLogin, routing.ViewRegister, routing.ViewDetails} {
		router.Get(string(view), pages)
	}
	router.NotFound(pages)

	api := humachi.New(router, huma.DefaultConfig("budget-web", "1.0.0"))

	status.NewHandler().Register(api)
	route.NewHandler().Register(api)

	auth.NewSessionHandler().Register(api)
	auth.NewLoginHandler(r.Service.Auth).Register(api)
	auth.NewLogoutHandler(r.Service.Auth).Register(api)
	auth.NewRegisterHandler(r.Service.Auth).Register(api)

	transaction.NewListViewHandler().Register(api)
	transaction.NewListQueryHandler().Register(api)
	transaction.NewCreateTransactionHandler().Register(api)
	transaction.NewTransactionDetailHandler().Register(api)

	return router
}

// Serve listens until ctx is done, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
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
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
