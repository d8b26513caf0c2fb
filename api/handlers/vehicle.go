package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-registry-api/config"
	"github.com/linesmerrill/vehicle-registry-api/models"
	"github.com/linesmerrill/vehicle-registry-api/registry"
)

// Vehicle exported for testing purposes
type Vehicle struct {
	Registry *registry.VehicleRegistry
}

// VehicleHandler returns all vehicles as newline separated summary lines
func (v Vehicle) VehicleHandler(w http.ResponseWriter, r *http.Request) {
	list, err := v.Registry.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, list.Summary)
}

// CreateVehicleHandler creates a vehicle
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var details models.VehicleDetails
	if err := decodeBody(r, &details); err != nil {
		config.ErrorStatus("failed to decode request body", "bad_request", http.StatusBadRequest, w, err)
		return
	}

	vehicle, err := v.Registry.Create(r.Context(), details)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.VehicleCreatedResponse{
		Message: "vehicle created successfully",
		NewCar:  *vehicle,
	})
}

// VehiclesByBrandHandler returns the vehicles of the brand in the path, ignoring case
func (v Vehicle) VehiclesByBrandHandler(w http.ResponseWriter, r *http.Request) {
	brand := mux.Vars(r)["brand"]

	zap.S().Debugf("brand: '%v'", brand)

	list, err := v.Registry.FilterByBrand(r.Context(), brand)
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, list.Summary)
}

// UpdateVehicleHandler updates a vehicle's color and price
func (v Vehicle) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]

	var update models.VehicleUpdate
	if err := decodeBody(r, &update); err != nil {
		config.ErrorStatus("failed to decode request body", "bad_request", http.StatusBadRequest, w, err)
		return
	}

	vehicle, err := v.Registry.Update(r.Context(), vehicleID, update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.VehicleUpdatedResponse{
		Message: "vehicle found",
		Record:  *vehicle,
	})
}

// DeleteVehicleHandler deletes a vehicle by ID
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]

	if err := v.Registry.Delete(r.Context(), vehicleID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "vehicle deleted"})
}
