package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/arjunm592/airtravel/api"
	"github.com/arjunm592/airtravel/config"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Flights  *api.FlightHandler
	Bookings *api.BookingHandler
	NLSearch *api.NLSearchHandler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, handlers Handlers) error {
	router := gin.New()
	router.Use(gin.Recovery())

	group := router.Group("/api")
	handlers.Flights.Register(group)
	handlers.Bookings.Register(group)
	handlers.NLSearch.Register(group)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
