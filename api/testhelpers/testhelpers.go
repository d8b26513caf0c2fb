package testhelpers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/vehicle-registry-api/databases"
	"github.com/linesmerrill/vehicle-registry-api/models"
	"github.com/linesmerrill/vehicle-registry-api/registry"
)

// NewRequest builds a request with body marshalled as JSON. A nil body sends no body.
func NewRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeBody unmarshals the recorded response body into v
func DecodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), "body: %s", rr.Body.String())
}

// DecodeError unmarshals the recorded response body as an error message
func DecodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorMessageResponse {
	t.Helper()
	var resp models.ErrorMessageResponse
	DecodeBody(t, rr, &resp)
	return resp
}

// NewVehicleRegistry returns a registry over a fresh store holding vehicles in order
func NewVehicleRegistry(t *testing.T, vehicles ...models.Vehicle) *registry.VehicleRegistry {
	t.Helper()
	db := databases.NewVehicleDatabase()
	for _, v := range vehicles {
		require.NoError(t, db.InsertOne(context.Background(), v))
	}
	return registry.NewVehicleRegistry(db)
}

// NewAccountRegistry returns a registry over a fresh store hashing at the
// lowest bcrypt cost to keep tests fast
func NewAccountRegistry(t *testing.T) *registry.AccountRegistry {
	t.Helper()
	return registry.NewAccountRegistry(databases.NewUserDatabase(), registry.BcryptHasher{Cost: 4})
}
