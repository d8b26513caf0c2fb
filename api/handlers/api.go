package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-registry-api/api"
	"github.com/linesmerrill/vehicle-registry-api/config"
	"github.com/linesmerrill/vehicle-registry-api/databases"
	"github.com/linesmerrill/vehicle-registry-api/models"
	"github.com/linesmerrill/vehicle-registry-api/registry"
)

// App stores the router and the registries, so they can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Vehicles *registry.VehicleRegistry
	Accounts *registry.AccountRegistry
	Metrics  *api.MetricsCollector
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	v := Vehicle{Registry: a.Vehicles}
	u := User{Registry: a.Accounts}
	m := MetricsHandler{Metrics: a.Metrics}

	// health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	r.HandleFunc("/metrics/summary", m.GetMetricsSummary).Methods("GET")
	r.HandleFunc("/metrics/traces", m.GetMetricsTraces).Methods("GET")

	r.HandleFunc("/cars", v.VehicleHandler).Methods("GET")
	r.HandleFunc("/cars", v.CreateVehicleHandler).Methods("POST")
	r.HandleFunc("/cars/brand/{brand}", v.VehiclesByBrandHandler).Methods("GET")
	r.HandleFunc("/cars/id/{id}", v.UpdateVehicleHandler).Methods("PUT")
	r.HandleFunc("/cars/id/{id}", v.DeleteVehicleHandler).Methods("DELETE")

	r.HandleFunc("/users", u.UserCreateHandler).Methods("POST")
	r.HandleFunc("/login", u.UserLoginHandler).Methods("POST")

	r.Use(api.MetricsMiddleware(a.Metrics))
	if a.Config.RequestTimeout > 0 {
		r.Use(api.TimeoutMiddleware(a.Config.RequestTimeout))
	}
	return r
}

// Initialize is invoked by main to create the stores, seed the vehicle
// collection and build the router
func (a *App) Initialize() error {
	a.Vehicles = registry.NewVehicleRegistry(databases.NewVehicleDatabase())
	a.Accounts = registry.NewAccountRegistry(databases.NewUserDatabase(), registry.BcryptHasher{Cost: a.Config.BcryptCost})
	a.Metrics = api.NewMetricsCollector(a.Config.MaxTraces, a.Config.MetricsWindow)

	if err := a.Vehicles.SeedVehicles(context.Background()); err != nil {
		zap.S().Errorw("failed to seed vehicles", "error", err)
		return err
	}
	zap.S().Info("vehicle-registry-api has seeded the vehicle collection")

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
