// Package docs Vehicle Registry API.
//
// Documentation of the Vehicle Registry API.
//
//     Schemes: http, https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//     - text/plain
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/vehicle-registry-api/api"
	"github.com/linesmerrill/vehicle-registry-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the health check of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /metrics/summary metrics metricsSummary
// Request counts and timings per route for the current window.
// responses:
//   200: metricsSummaryResponse

// swagger:response metricsSummaryResponse
type metricsSummaryResponseWrapper struct {
	// in:body
	Body api.MetricsSummary
}

// swagger:route GET /metrics/traces metrics metricsTraces
// The most recent request traces, oldest first.
// responses:
//   200: metricsTracesResponse

// swagger:parameters metricsTraces
type metricsTracesParamsWrapper struct {
	// in:query
	Limit int `json:"limit"`
}

// swagger:response metricsTracesResponse
type metricsTracesResponseWrapper struct {
	// in:body
	Body struct {
		Traces []api.RequestTrace `json:"traces"`
		Limit  int                `json:"limit"`
		Count  int                `json:"count"`
	}
}

// swagger:route GET /cars vehicle listVehicles
// Lists every vehicle as one text line per record, in insertion order.
// produces:
// - text/plain
// responses:
//   200: vehicleSummaryResponse
//   404: errorResponse

// swagger:route GET /cars/brand/{brand} vehicle vehiclesByBrand
// Lists the vehicles of a brand, ignoring case.
// produces:
// - text/plain
// responses:
//   200: vehicleSummaryResponse
//   404: errorResponse

// One line per vehicle, separated by newlines
// swagger:response vehicleSummaryResponse
type vehicleSummaryResponseWrapper struct {
	// in:body
	Body string
}

// swagger:parameters vehiclesByBrand
type brandParamsWrapper struct {
	// in:path
	Brand string `json:"brand"`
}

// swagger:route POST /cars vehicle createVehicle
// Creates a vehicle. All fields are required.
// responses:
//   201: vehicleCreatedResponse
//   400: errorResponse

// swagger:parameters createVehicle
type createVehicleParamsWrapper struct {
	// in:body
	Body models.VehicleDetails
}

// swagger:response vehicleCreatedResponse
type vehicleCreatedResponseWrapper struct {
	// in:body
	Body models.VehicleCreatedResponse
}

// swagger:route PUT /cars/id/{id} vehicle updateVehicle
// Updates the color and/or price of a vehicle and returns the updated record.
// responses:
//   200: vehicleUpdatedResponse
//   400: errorResponse
//   404: errorResponse

// swagger:parameters updateVehicle
type updateVehicleParamsWrapper struct {
	// in:path
	ID string `json:"id"`
	// in:body
	Body models.VehicleUpdate
}

// swagger:response vehicleUpdatedResponse
type vehicleUpdatedResponseWrapper struct {
	// in:body
	Body models.VehicleUpdatedResponse
}

// swagger:route DELETE /cars/id/{id} vehicle deleteVehicle
// Deletes a vehicle.
// responses:
//   200: messageResponse
//   404: errorResponse

// swagger:parameters deleteVehicle
type deleteVehicleParamsWrapper struct {
	// in:path
	ID string `json:"id"`
}

// swagger:route POST /users user createUser
// Registers a user. The email must not be in use.
// responses:
//   201: userCreatedResponse
//   400: errorResponse
//   409: errorResponse
//   500: errorResponse

// swagger:parameters createUser
type createUserParamsWrapper struct {
	// in:body
	Body models.UserDetails
}

// swagger:response userCreatedResponse
type userCreatedResponseWrapper struct {
	// in:body
	Body models.UserCreatedResponse
}

// swagger:route POST /login user login
// Checks an email and password. No token is issued.
// responses:
//   200: messageResponse
//   400: errorResponse
//   401: errorResponse
//   404: errorResponse
//   500: errorResponse

// swagger:parameters login
type loginParamsWrapper struct {
	// in:body
	Body models.Credentials
}

// swagger:response messageResponse
type messageResponseWrapper struct {
	// in:body
	Body models.MessageResponse
}

// Error message and machine readable code
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
