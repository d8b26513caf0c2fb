package databases

//go generate: mockery --name VehicleDatabase

import (
	"context"
	"sync"

	"github.com/linesmerrill/vehicle-registry-api/models"
)

// VehicleDatabase contains the methods to use with the vehicle collection.
// FindOne has no caller in the registry, which reads through Find and
// writes through UpdateOne/DeleteOne; it completes the collection API next
// to UserDatabase.FindOne and is what tests use to inspect stored records.
type VehicleDatabase interface {
	Find(ctx context.Context) ([]models.Vehicle, error)
	FindOne(ctx context.Context, id string) (*models.Vehicle, error)
	InsertOne(ctx context.Context, vehicle models.Vehicle) error
	UpdateOne(ctx context.Context, id string, update models.VehicleUpdate) (*models.Vehicle, error)
	DeleteOne(ctx context.Context, id string) error
	CountDocuments(ctx context.Context) (int64, error)
}

type vehicleDatabase struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
}

// NewVehicleDatabase initializes an empty in-memory vehicle collection
func NewVehicleDatabase() VehicleDatabase {
	return &vehicleDatabase{}
}

// Find returns a copy of every vehicle in insertion order
func (c *vehicleDatabase) Find(ctx context.Context) ([]models.Vehicle, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out, nil
}

// FindOne returns a copy of the vehicle with the given id
func (c *vehicleDatabase) FindOne(ctx context.Context, id string) (*models.Vehicle, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrNoDocuments
	}
	v := c.vehicles[i]
	return &v, nil
}

func (c *vehicleDatabase) InsertOne(ctx context.Context, vehicle models.Vehicle) error {
	if err := alive(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(vehicle.ID) >= 0 {
		return ErrDuplicateID
	}
	c.vehicles = append(c.vehicles, vehicle)
	return nil
}

// UpdateOne sets color and price on the matching vehicle. Zero-valued fields in
// update are left untouched. The stored record after the change is returned.
func (c *vehicleDatabase) UpdateOne(ctx context.Context, id string, update models.VehicleUpdate) (*models.Vehicle, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrNoDocuments
	}
	if update.Color != "" {
		c.vehicles[i].Color = update.Color
	}
	if update.Price != 0 {
		c.vehicles[i].Price = update.Price
	}
	v := c.vehicles[i]
	return &v, nil
}

func (c *vehicleDatabase) DeleteOne(ctx context.Context, id string) error {
	if err := alive(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrNoDocuments
	}
	c.vehicles = append(c.vehicles[:i], c.vehicles[i+1:]...)
	return nil
}

func (c *vehicleDatabase) CountDocuments(ctx context.Context) (int64, error) {
	if err := alive(ctx); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.vehicles)), nil
}

// indexOf must be called with mu held
func (c *vehicleDatabase) indexOf(id string) int {
	for i := range c.vehicles {
		if c.vehicles[i].ID == id {
			return i
		}
	}
	return -1
}
