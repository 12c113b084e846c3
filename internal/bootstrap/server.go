package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/api"
	"github.com/rmoulin/skyflight/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups everything the HTTP surface mounts.
type Handlers struct {
	Flights    *api.FlightHandler
	Aircraft   *api.AircraftHandler
	Employees  *api.EmployeeHandler
	Passengers *api.PassengerHandler
	Bookings   *api.BookingHandler
	Wizard     *api.WizardHandler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	api.RegisterValidations()

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	root := engine.Group("/api")
	h.Flights.Register(root.Group("/flights"))
	h.Aircraft.Register(root.Group("/aircraft"))
	h.Employees.Register(root.Group("/employees"))
	h.Passengers.Register(root.Group("/passengers"))
	h.Bookings.Register(root.Group("/bookings"))
	h.Bookings.RegisterMyBookings(root)
	h.Wizard.Register(root.Group("/wizard"))

	engine.StaticFile("/openapi.json", "./api/openapi.json")
	engine.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/openapi.json"),
	)))

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
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
