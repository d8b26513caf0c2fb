package registry

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-registry-api/databases"
	"github.com/linesmerrill/vehicle-registry-api/models"
)

// VehicleList is the result of listing or filtering vehicles. Summary holds
// one rendered line per record, newline separated.
type VehicleList struct {
	Vehicles []models.Vehicle
	Summary  string
}

// VehicleRegistry owns the vehicle collection
type VehicleRegistry struct {
	DB    databases.VehicleDatabase
	NewID func() string
}

// NewVehicleRegistry returns a registry backed by db
func NewVehicleRegistry(db databases.VehicleDatabase) *VehicleRegistry {
	return &VehicleRegistry{DB: db, NewID: uuid.NewString}
}

// SeedVehicles inserts the vehicle every fresh registry starts with
func (r *VehicleRegistry) SeedVehicles(ctx context.Context) error {
	_, err := r.Create(ctx, models.VehicleDetails{
		Model: "uno",
		Brand: "fiat",
		Year:  2010,
		Color: "white",
		Price: 20000,
	})
	return err
}

// List returns every vehicle in insertion order
func (r *VehicleRegistry) List(ctx context.Context) (*VehicleList, error) {
	vehicles, err := r.DB.Find(ctx)
	if err != nil {
		return nil, wrapError(ErrInternal, "failed to list vehicles", err)
	}
	if len(vehicles) == 0 {
		return nil, newError(ErrNotFound, "no vehicles found")
	}

	lines := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		lines = append(lines, v.SummaryLine())
	}
	return &VehicleList{Vehicles: vehicles, Summary: strings.Join(lines, "\n")}, nil
}

// Create validates details and appends a new vehicle with a fresh id
func (r *VehicleRegistry) Create(ctx context.Context, details models.VehicleDetails) (*models.Vehicle, error) {
	if details.Model == "" || details.Brand == "" || details.Year == 0 || details.Color == "" || details.Price == 0 {
		return nil, newError(ErrValidation, "model, brand, year, color and price are required")
	}

	vehicle := models.Vehicle{
		ID:    r.NewID(),
		Model: details.Model,
		Brand: details.Brand,
		Year:  details.Year,
		Color: details.Color,
		Price: details.Price,
	}
	if err := r.DB.InsertOne(ctx, vehicle); err != nil {
		return nil, wrapError(ErrInternal, "failed to create vehicle", err)
	}

	zap.S().Debugw("vehicle created", "id", vehicle.ID, "brand", vehicle.Brand)
	return &vehicle, nil
}

// FilterByBrand returns the vehicles whose brand matches, ignoring case
func (r *VehicleRegistry) FilterByBrand(ctx context.Context, brand string) (*VehicleList, error) {
	vehicles, err := r.DB.Find(ctx)
	if err != nil {
		return nil, wrapError(ErrInternal, "failed to list vehicles", err)
	}

	want := strings.ToLower(brand)
	var matched []models.Vehicle
	var lines []string
	for _, v := range vehicles {
		if strings.ToLower(v.Brand) == want {
			matched = append(matched, v)
			lines = append(lines, v.BrandLine())
		}
	}
	if len(matched) == 0 {
		return nil, newError(ErrNotFound, "no vehicles found for brand: "+brand)
	}
	return &VehicleList{Vehicles: matched, Summary: strings.Join(lines, "\n")}, nil
}

// Update changes color and/or price on the vehicle with the given id and
// returns the record as stored after the change. Empty fields are ignored, so
// an empty update succeeds without modifying anything.
func (r *VehicleRegistry) Update(ctx context.Context, id string, update models.VehicleUpdate) (*models.Vehicle, error) {
	vehicle, err := r.DB.UpdateOne(ctx, id, update)
	if errors.Is(err, databases.ErrNoDocuments) {
		return nil, newError(ErrNotFound, "vehicle not found")
	}
	if err != nil {
		return nil, wrapError(ErrInternal, "failed to update vehicle", err)
	}
	return vehicle, nil
}

// Delete removes the vehicle with the given id
func (r *VehicleRegistry) Delete(ctx context.Context, id string) error {
	err := r.DB.DeleteOne(ctx, id)
	if errors.Is(err, databases.ErrNoDocuments) {
		return newError(ErrNotFound, "vehicle not found")
	}
	if err != nil {
		return wrapError(ErrInternal, "failed to delete vehicle", err)
	}
	return nil
}
