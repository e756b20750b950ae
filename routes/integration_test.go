package routes_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"wine-api/config"
	"wine-api/database"
	"wine-api/idgen"
	"wine-api/routes"

	"github.com/gofiber/fiber/v2"
)

// These tests need a reachable database (DB_* env vars) and are skipped by
// default. Set INTEGRATION_TESTS=1 to run them.

func newIntegrationApp(t *testing.T) *fiber.App {
	t.Helper()
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires a database)")
	}

	config.LoadConfig()
	idgen.Init(config.SnowflakeNode)

	database.EnsureDatabaseExists(config.DBName)
	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		t.Fatalf("connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupWineRoutes(app, db)
	routes.SetupLocationRoutes(app, db)
	routes.SetupStorageLotRoutes(app, db)
	routes.SetupStockRoutes(app, db)
	routes.SetupMovementRoutes(app, db)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env
}

func dataField(t *testing.T, env envelope, field string) string {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	v, ok := m[field].(string)
	if !ok {
		t.Fatalf("field %q missing or not a string in %s", field, env.Data)
	}
	return v
}

func TestLocationAndStorageLotScenario(t *testing.T) {
	app := newIntegrationApp(t)
	suffix := fmt.Sprint(time.Now().UnixNano())

	status, env := do(t, app, "POST", "/api/v1/locations/",
		`{"name": "Main Cellar", "type": "Cellar"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create location: expected 201, got %d (%s)", status, env.Error)
	}
	locationID := dataField(t, env, "id")

	lotBody := fmt.Sprintf(`{"location_id": "%s", "lot_name": "Rack-%s", "capacity": 100}`, locationID, suffix)
	status, env = do(t, app, "POST", "/api/v1/storagelots/", lotBody)
	if status != fiber.StatusCreated {
		t.Fatalf("create storage lot: expected 201, got %d (%s)", status, env.Error)
	}
	lotID := dataField(t, env, "id")

	// Same (location_id, lot_name) must lose to the unique index.
	status, env = do(t, app, "POST", "/api/v1/storagelots/", lotBody)
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate storage lot: expected 409, got %d (%s)", status, env.Error)
	}

	status, env = do(t, app, "GET", "/api/v1/storagelots/"+lotID, "")
	if status != fiber.StatusOK {
		t.Fatalf("get storage lot: expected 200, got %d", status)
	}
	if got := dataField(t, env, "lot_name"); got != "Rack-"+suffix {
		t.Fatalf("lot_name mismatch: %q", got)
	}
}

func TestWineStockReferenceScenario(t *testing.T) {
	app := newIntegrationApp(t)
	suffix := fmt.Sprint(time.Now().UnixNano())

	wineBody := fmt.Sprintf(`{
		"product_code": "BDX-%s",
		"wine_name": "Test",
		"vintage_year": 2020,
		"producer": "P",
		"country": "France",
		"region": "Bordeaux",
		"grape_varieties": ["Merlot"],
		"alcohol_content": 13.5,
		"price_bottle": 20.0,
		"price_glass": 5.0,
		"cost_price": 15.0
	}`, suffix)

	status, env := do(t, app, "POST", "/api/v1/wines/", wineBody)
	if status != fiber.StatusCreated {
		t.Fatalf("create wine: expected 201, got %d (%s)", status, env.Error)
	}
	skuID := dataField(t, env, "id")

	// Create followed by get returns the same record.
	status, getEnv := do(t, app, "GET", "/api/v1/wines/"+skuID, "")
	if status != fiber.StatusOK {
		t.Fatalf("get wine: expected 200, got %d", status)
	}
	if string(getEnv.Data) == "" || dataField(t, getEnv, "product_code") != "BDX-"+suffix {
		t.Fatalf("get did not return the created record: %s", getEnv.Data)
	}

	// Duplicate product_code: exactly one success, one conflict.
	status, env = do(t, app, "POST", "/api/v1/wines/", wineBody)
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate product_code: expected 409, got %d (%s)", status, env.Error)
	}

	// Stock pointing at a location that does not exist.
	stockBody := fmt.Sprintf(`{"sku_id": "%s", "location_id": "999999999999999999", "quantity": 10}`, skuID)
	status, env = do(t, app, "POST", "/api/v1/stocks/", stockBody)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("missing location: expected 422, got %d (%s)", status, env.Error)
	}
}

func TestDuplicateUserEmailConflict(t *testing.T) {
	app := newIntegrationApp(t)
	suffix := fmt.Sprint(time.Now().UnixNano())

	userBody := fmt.Sprintf(`{
		"first_name": "Twin",
		"last_name": "One",
		"email": "twin-%s@wine.test",
		"role": "Staff",
		"password": "secret1"
	}`, suffix)

	status, env := do(t, app, "POST", "/api/v1/users/", userBody)
	if status != fiber.StatusCreated {
		t.Fatalf("create user: expected 201, got %d (%s)", status, env.Error)
	}

	// Same email must lose to the unique index even with different names.
	status, env = do(t, app, "POST", "/api/v1/users/", fmt.Sprintf(`{
		"first_name": "Twin",
		"last_name": "Two",
		"email": "twin-%s@wine.test",
		"role": "Manager",
		"password": "secret2"
	}`, suffix))
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate email: expected 409, got %d (%s)", status, env.Error)
	}
}

func TestDuplicateStockRowConflict(t *testing.T) {
	app := newIntegrationApp(t)
	suffix := fmt.Sprint(time.Now().UnixNano())

	status, env := do(t, app, "POST", "/api/v1/locations/",
		`{"name": "Stock Cellar", "type": "Cellar"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create location: expected 201, got %d (%s)", status, env.Error)
	}
	locationID := dataField(t, env, "id")

	status, env = do(t, app, "POST", "/api/v1/storagelots/",
		fmt.Sprintf(`{"location_id": "%s", "lot_name": "Bin-%s", "capacity": 50}`, locationID, suffix))
	if status != fiber.StatusCreated {
		t.Fatalf("create storage lot: expected 201, got %d (%s)", status, env.Error)
	}
	lotID := dataField(t, env, "id")

	status, env = do(t, app, "POST", "/api/v1/wines/", fmt.Sprintf(`{
		"product_code": "STK-%s",
		"wine_name": "Stocked",
		"vintage_year": 2017,
		"producer": "P",
		"country": "Spain",
		"region": "Rioja",
		"grape_varieties": ["Tempranillo"],
		"alcohol_content": 13.0,
		"price_bottle": 25.0,
		"price_glass": 6.0,
		"cost_price": 14.0
	}`, suffix))
	if status != fiber.StatusCreated {
		t.Fatalf("create wine: expected 201, got %d (%s)", status, env.Error)
	}
	skuID := dataField(t, env, "id")

	stockBody := fmt.Sprintf(`{"sku_id": "%s", "lot_id": "%s", "location_id": "%s", "quantity": 24}`,
		skuID, lotID, locationID)
	status, env = do(t, app, "POST", "/api/v1/stocks/", stockBody)
	if status != fiber.StatusCreated {
		t.Fatalf("create stock: expected 201, got %d (%s)", status, env.Error)
	}

	// One stock row per (sku, lot, location); a second create is a conflict,
	// not an upsert.
	status, env = do(t, app, "POST", "/api/v1/stocks/", stockBody)
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate stock row: expected 409, got %d (%s)", status, env.Error)
	}
}

func TestMovementAuditTrail(t *testing.T) {
	app := newIntegrationApp(t)
	suffix := fmt.Sprint(time.Now().UnixNano())

	status, env := do(t, app, "POST", "/api/v1/users/", fmt.Sprintf(`{
		"first_name": "Cellar",
		"last_name": "Hand",
		"email": "hand-%s@wine.test",
		"role": "Staff",
		"password": "secret1"
	}`, suffix))
	if status != fiber.StatusCreated {
		t.Fatalf("create user: expected 201, got %d (%s)", status, env.Error)
	}
	userID := dataField(t, env, "id")

	status, env = do(t, app, "POST", "/api/v1/wines/", fmt.Sprintf(`{
		"product_code": "MOV-%s",
		"wine_name": "Moved",
		"vintage_year": 2018,
		"producer": "P",
		"country": "France",
		"region": "Rhone",
		"grape_varieties": ["Syrah"],
		"alcohol_content": 14.0,
		"price_bottle": 30.0,
		"price_glass": 8.0,
		"cost_price": 18.0
	}`, suffix))
	if status != fiber.StatusCreated {
		t.Fatalf("create wine: expected 201, got %d (%s)", status, env.Error)
	}
	skuID := dataField(t, env, "id")

	status, env = do(t, app, "POST", "/api/v1/movements/", fmt.Sprintf(`{
		"batch_ref": "B-%s",
		"sku_id": "%s",
		"quantity": 12,
		"movement_type": "Inbound",
		"performed_by": "%s"
	}`, suffix, skuID, userID))
	if status != fiber.StatusCreated {
		t.Fatalf("create movement: expected 201, got %d (%s)", status, env.Error)
	}
	movementID := dataField(t, env, "id")

	status, env = do(t, app, "GET", "/api/v1/movements/"+movementID, "")
	if status != fiber.StatusOK {
		t.Fatalf("get movement: expected 200, got %d", status)
	}
	if dataField(t, env, "batch_ref") != "B-"+suffix {
		t.Fatalf("batch_ref mismatch: %s", env.Data)
	}
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	app := newIntegrationApp(t)

	for _, path := range []string{
		"/api/v1/users/999999999999999998",
		"/api/v1/wines/999999999999999998",
		"/api/v1/locations/999999999999999998",
		"/api/v1/storagelots/999999999999999998",
		"/api/v1/stocks/999999999999999998",
		"/api/v1/movements/999999999999999998",
	} {
		status, _ := do(t, app, "GET", path, "")
		if status != fiber.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, status)
		}
	}
}

func TestLoginIssuesToken(t *testing.T) {
	app := newIntegrationApp(t)
	suffix := fmt.Sprint(time.Now().UnixNano())
	email := fmt.Sprintf("login-%s@wine.test", suffix)

	status, env := do(t, app, "POST", "/api/v1/users/", fmt.Sprintf(`{
		"first_name": "Log",
		"last_name": "In",
		"email": "%s",
		"role": "Manager",
		"password": "secret1"
	}`, email))
	if status != fiber.StatusCreated {
		t.Fatalf("create user: expected 201, got %d (%s)", status, env.Error)
	}

	status, env = do(t, app, "POST", "/api/v1/auth/login",
		fmt.Sprintf(`{"email": "%s", "password": "secret1"}`, email))
	if status != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", status, env.Error)
	}
	if dataField(t, env, "token") == "" {
		t.Fatal("expected a token in the login response")
	}

	status, env = do(t, app, "POST", "/api/v1/auth/login",
		fmt.Sprintf(`{"email": "%s", "password": "wrong"}`, email))
	if status != fiber.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", status)
	}
}
