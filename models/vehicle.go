package models

import (
	"fmt"
	"strconv"
)

// Vehicle holds the structure for a record in the vehicle collection
type Vehicle struct {
	ID    string  `json:"id"`
	Model string  `json:"model"`
	Brand string  `json:"brand"`
	Year  int     `json:"year"`
	Color string  `json:"color"`
	Price float64 `json:"price"`
}

// VehicleDetails is the request body accepted when creating a vehicle
type VehicleDetails struct {
	Model string  `json:"model"`
	Brand string  `json:"brand"`
	Year  int     `json:"year"`
	Color string  `json:"color"`
	Price float64 `json:"price"`
}

// VehicleUpdate is the request body accepted when updating a vehicle.
// Only color and price may change after creation.
type VehicleUpdate struct {
	Color string  `json:"color"`
	Price float64 `json:"price"`
}

// SummaryLine renders the full listing line for a vehicle
func (v Vehicle) SummaryLine() string {
	return fmt.Sprintf("ID: %s | Model: %s | Brand: %s | Year: %d | Color: %s | Price: R$%s",
		v.ID, v.Model, v.Brand, v.Year, v.Color, FormatPrice(v.Price))
}

// BrandLine renders the shorter line used by the brand filter
func (v Vehicle) BrandLine() string {
	return fmt.Sprintf("ID: %s | Model: %s | Color: %s | Price: %s",
		v.ID, v.Model, v.Color, FormatPrice(v.Price))
}

// FormatPrice prints a price with the fewest digits that represent it exactly,
// so 20000 renders as "20000" and 19999.9 as "19999.9".
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// VehicleCreatedResponse is returned by POST /cars
type VehicleCreatedResponse struct {
	Message string  `json:"message"`
	NewCar  Vehicle `json:"newCar"`
}

// VehicleUpdatedResponse is returned by PUT /cars/id/{id}
type VehicleUpdatedResponse struct {
	Message string  `json:"message"`
	Record  Vehicle `json:"record"`
}
