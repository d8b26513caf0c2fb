package registry_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/vehicle-registry-api/databases"
	"github.com/linesmerrill/vehicle-registry-api/databases/mocks"
	"github.com/linesmerrill/vehicle-registry-api/models"
	"github.com/linesmerrill/vehicle-registry-api/registry"
)

func newVehicleRegistry(t *testing.T) *registry.VehicleRegistry {
	t.Helper()
	return registry.NewVehicleRegistry(databases.NewVehicleDatabase())
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestVehicleRegistry_SeedVehicles(t *testing.T) {
	r := newVehicleRegistry(t)
	r.NewID = sequentialIDs()
	require.NoError(t, r.SeedVehicles(context.Background()))

	list, err := r.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list.Vehicles, 1)
	assert.Equal(t, "ID: id-1 | Model: uno | Brand: fiat | Year: 2010 | Color: white | Price: R$20000", list.Summary)
}

func TestVehicleRegistry_ListEmpty(t *testing.T) {
	r := newVehicleRegistry(t)

	list, err := r.List(context.Background())

	assert.Nil(t, list)
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.EqualError(t, err, "no vehicles found")
}

func TestVehicleRegistry_ListStoreFailure(t *testing.T) {
	db := mocks.NewVehicleDatabase(t)
	db.On("Find", mock.Anything).Return(nil, errors.New("mocked-error"))
	r := registry.NewVehicleRegistry(db)

	_, err := r.List(context.Background())

	assert.ErrorIs(t, err, registry.ErrInternal)
	assert.EqualError(t, err, "failed to list vehicles: mocked-error")
}

func TestVehicleRegistry_CreateThenList(t *testing.T) {
	r := newVehicleRegistry(t)
	require.NoError(t, r.SeedVehicles(context.Background()))

	inputs := []models.VehicleDetails{
		{Model: "gol", Brand: "volkswagen", Year: 2015, Color: "black", Price: 35000},
		{Model: "onix", Brand: "chevrolet", Year: 2020, Color: "red", Price: 61999.9},
		{Model: "argo", Brand: "Fiat", Year: 2022, Color: "blue", Price: 80000},
	}

	seen := map[string]bool{}
	before, err := r.List(context.Background())
	require.NoError(t, err)
	for _, v := range before.Vehicles {
		seen[v.ID] = true
	}

	for _, in := range inputs {
		created, err := r.Create(context.Background(), in)
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.False(t, seen[created.ID], "id %s reused", created.ID)
		seen[created.ID] = true
		assert.Equal(t, in.Model, created.Model)
		assert.Equal(t, in.Brand, created.Brand)
		assert.Equal(t, in.Year, created.Year)
		assert.Equal(t, in.Color, created.Color)
		assert.Equal(t, in.Price, created.Price)

		after, err := r.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, after.Vehicles, len(before.Vehicles)+1)
		assert.Equal(t, *created, after.Vehicles[len(after.Vehicles)-1])
		before = after
	}
}

func TestVehicleRegistry_CreateValidation(t *testing.T) {
	valid := models.VehicleDetails{Model: "uno", Brand: "fiat", Year: 2010, Color: "white", Price: 20000}

	tests := []struct {
		name   string
		mutate func(*models.VehicleDetails)
	}{
		{"missing model", func(d *models.VehicleDetails) { d.Model = "" }},
		{"missing brand", func(d *models.VehicleDetails) { d.Brand = "" }},
		{"zero year", func(d *models.VehicleDetails) { d.Year = 0 }},
		{"missing color", func(d *models.VehicleDetails) { d.Color = "" }},
		{"zero price", func(d *models.VehicleDetails) { d.Price = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newVehicleRegistry(t)
			in := valid
			tt.mutate(&in)

			created, err := r.Create(context.Background(), in)

			assert.Nil(t, created)
			assert.ErrorIs(t, err, registry.ErrValidation)
			_, err = r.List(context.Background())
			assert.ErrorIs(t, err, registry.ErrNotFound)
		})
	}
}

func TestVehicleRegistry_CreateStoreFailure(t *testing.T) {
	db := mocks.NewVehicleDatabase(t)
	db.On("InsertOne", mock.Anything, mock.AnythingOfType("models.Vehicle")).Return(errors.New("mocked-error"))
	r := registry.NewVehicleRegistry(db)

	_, err := r.Create(context.Background(), models.VehicleDetails{Model: "uno", Brand: "fiat", Year: 2010, Color: "white", Price: 1})

	assert.ErrorIs(t, err, registry.ErrInternal)
}

func TestVehicleRegistry_FilterByBrandIgnoresCase(t *testing.T) {
	r := newVehicleRegistry(t)
	r.NewID = sequentialIDs()
	ctx := context.Background()
	require.NoError(t, r.SeedVehicles(ctx))
	_, err := r.Create(ctx, models.VehicleDetails{Model: "gol", Brand: "volkswagen", Year: 2015, Color: "black", Price: 35000})
	require.NoError(t, err)
	_, err = r.Create(ctx, models.VehicleDetails{Model: "argo", Brand: "Fiat", Year: 2022, Color: "blue", Price: 80000.5})
	require.NoError(t, err)

	upper, err := r.FilterByBrand(ctx, "FIAT")
	require.NoError(t, err)
	lower, err := r.FilterByBrand(ctx, "fiat")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	require.Len(t, lower.Vehicles, 2)
	assert.Equal(t, "id-1", lower.Vehicles[0].ID)
	assert.Equal(t, "id-3", lower.Vehicles[1].ID)
	assert.Equal(t,
		"ID: id-1 | Model: uno | Color: white | Price: 20000\nID: id-3 | Model: argo | Color: blue | Price: 80000.5",
		lower.Summary)
}

func TestVehicleRegistry_FilterByBrandNoMatch(t *testing.T) {
	r := newVehicleRegistry(t)
	require.NoError(t, r.SeedVehicles(context.Background()))

	list, err := r.FilterByBrand(context.Background(), "Toyota")

	assert.Nil(t, list)
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.Contains(t, err.Error(), "Toyota")
}

func TestVehicleRegistry_Update(t *testing.T) {
	tests := []struct {
		name      string
		update    models.VehicleUpdate
		wantColor string
		wantPrice float64
	}{
		{"color only keeps price", models.VehicleUpdate{Color: "black"}, "black", 20000},
		{"price only keeps color", models.VehicleUpdate{Price: 18000}, "white", 18000},
		{"both", models.VehicleUpdate{Color: "silver", Price: 19000}, "silver", 19000},
		{"neither is a no-op", models.VehicleUpdate{}, "white", 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newVehicleRegistry(t)
			ctx := context.Background()
			require.NoError(t, r.SeedVehicles(ctx))
			before, err := r.List(ctx)
			require.NoError(t, err)
			original := before.Vehicles[0]

			updated, err := r.Update(ctx, original.ID, tt.update)

			require.NoError(t, err)
			assert.Equal(t, tt.wantColor, updated.Color)
			assert.Equal(t, tt.wantPrice, updated.Price)

			after, err := r.List(ctx)
			require.NoError(t, err)
			want := original
			want.Color = tt.wantColor
			want.Price = tt.wantPrice
			assert.Equal(t, want, after.Vehicles[0])
			if tt.update == (models.VehicleUpdate{}) {
				assert.Equal(t, before.Summary, after.Summary)
			}
		})
	}
}

func TestVehicleRegistry_UpdateNotFound(t *testing.T) {
	r := newVehicleRegistry(t)

	v, err := r.Update(context.Background(), "missing", models.VehicleUpdate{Color: "black"})

	assert.Nil(t, v)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestVehicleRegistry_DeleteTwice(t *testing.T) {
	r := newVehicleRegistry(t)
	ctx := context.Background()
	require.NoError(t, r.SeedVehicles(ctx))
	created, err := r.Create(ctx, models.VehicleDetails{Model: "gol", Brand: "volkswagen", Year: 2015, Color: "black", Price: 35000})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Vehicles, 1)
	assert.False(t, strings.Contains(list.Summary, created.ID))

	assert.ErrorIs(t, r.Delete(ctx, created.ID), registry.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "never-existed"), registry.ErrNotFound)
}
