package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"equipmentrental/internal/database"
	"equipmentrental/internal/modules/customer"
	"equipmentrental/internal/modules/docs"
	"equipmentrental/internal/modules/equipment"
	"equipmentrental/internal/modules/inventory"
	"equipmentrental/internal/modules/rental"
	"equipmentrental/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every statement on the same in-memory db
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	equipmentRepo := repository.NewEquipmentRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	rentalRepo := repository.NewRentalRepository(db)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	root := r.Group("")
	docs.NewHandler().RegisterRoutes(root)
	equipment.NewHandler(equipment.NewService(equipmentRepo)).RegisterRoutes(root)
	customer.NewHandler(customer.NewService(customerRepo)).RegisterRoutes(root)
	inventory.NewHandler(inventory.NewService(inventoryRepo)).RegisterRoutes(root)
	rental.NewHandler(rental.NewService(rentalRepo, customerRepo, equipmentRepo)).RegisterRoutes(root)

	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestEquipmentCRUDRoundTrip(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/Equipment",
		`{"name":"Pressure Washer","price":25.00,"category":"Power Tools","description":"A 2000 PSI electric pressure washer."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Equipment added to the system", parse(t, w).Message)

	w = do(r, http.MethodGet, "/Equipment/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := parse(t, w)
	assert.Equal(t, "Equipment provided", resp.Message)

	var got struct {
		ID    int64   `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Pressure Washer", got.Name)
	assert.Equal(t, 25.00, got.Price)

	// full replace: every field takes the new value
	w = do(r, http.MethodPut, "/Equipment/1",
		`{"name":"Washer","price":30.00,"category":"Power Tools","description":"Updated."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Equipment with id (1) updated in the system", parse(t, w).Message)

	w = do(r, http.MethodGet, "/Equipment/1", "")
	require.NoError(t, json.Unmarshal(parse(t, w).Data, &got))
	assert.Equal(t, "Washer", got.Name)
	assert.Equal(t, 30.00, got.Price)

	w = do(r, http.MethodDelete, "/Equipment/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Equipment with id (1) was deleted from the system", parse(t, w).Message)

	w = do(r, http.MethodGet, "/Equipment/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Equipment with id (1) was not found in the system", parse(t, w).Message)
}

func TestUnknownIDsReturn404(t *testing.T) {
	r := setupRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/Equipment/99", ""},
		{http.MethodPut, "/Equipment/99", `{"name":"x","price":1.0,"category":"c","description":"d"}`},
		{http.MethodDelete, "/Equipment/99", ""},
		{http.MethodGet, "/Customer/99", ""},
		{http.MethodDelete, "/Customer/99", ""},
		{http.MethodGet, "/Inventory/99", ""},
		{http.MethodDelete, "/Inventory/99", ""},
		{http.MethodGet, "/Rental/99", ""},
		{http.MethodDelete, "/Rental/99", ""},
	}

	for _, tc := range cases {
		w := do(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, parse(t, w).Message, "was not found in the system")
	}
}

func TestListOnEmptyStore(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/Equipment", "/Customer", "/Inventory", "/Rental"} {
		w := do(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		resp := parse(t, w)
		assert.Equal(t, "[]", string(resp.Data), path)
	}
}

func TestCustomerMissingFieldRejected(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/Customer",
		`{"f_name":"John","l_name":"Dewey","address":"123 South St.","city":"Somewhere","state":"MI"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Phone")

	// nothing was stored
	w = do(r, http.MethodGet, "/Customer", "")
	assert.Equal(t, "[]", string(parse(t, w).Data))
}

func TestInventoryDuplicateKeyConflict(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/Inventory", `{"equipment_id":1,"total":50,"rented":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item added to the system inventory", parse(t, w).Message)

	w = do(r, http.MethodPost, "/Inventory", `{"equipment_id":1,"total":10,"rented":0}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Inventory item with id (1) already exists in the system", parse(t, w).Message)
}

func TestRentalPricing(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/Customer",
		`{"f_name":"John","l_name":"Dewey","address":"123 South St.","city":"Somewhere","state":"MI","phone":"123-456-7890"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/Equipment",
		`{"name":"Pressure Washer","price":25.00,"category":"Power Tools","description":"A 2000 PSI electric pressure washer."}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/Rental",
		`{"customer_id":1,"equipment_id":1,"quantity":2,"start":"2024-07-01","end":"2024-07-03"}`)
	require.Equal(t, http.StatusOK, w.Code)

	msg := parse(t, w).Message
	assert.Contains(t, msg, "John")
	assert.Contains(t, msg, "$100")
	assert.Contains(t, msg, "2 days")

	// the stored record keeps the raw fields, never the cost
	w = do(r, http.MethodGet, "/Rental/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := parse(t, w)
	assert.Equal(t, "Rental provided", resp.Message)

	var got struct {
		CustomerID  int64  `json:"customer_id"`
		EquipmentID int64  `json:"equipment_id"`
		Quantity    int    `json:"quantity"`
		Start       string `json:"start"`
		End         string `json:"end"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, int64(1), got.CustomerID)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, "2024-07-01", got.Start)
	assert.Equal(t, "2024-07-03", got.End)
	assert.NotContains(t, string(resp.Data), "cost")
}

func TestRentalSameDayIsZeroCost(t *testing.T) {
	r := setupRouter(t)

	do(r, http.MethodPost, "/Customer",
		`{"f_name":"Jane","l_name":"Doe","address":"444 North St.","city":"Elsewhere","state":"OH","phone":"321-456-7890"}`)
	do(r, http.MethodPost, "/Equipment",
		`{"name":"Ladder","price":12.50,"category":"Ladders","description":"A 24-foot aluminum extension ladder."}`)

	w := do(r, http.MethodPost, "/Rental",
		`{"customer_id":1,"equipment_id":1,"quantity":3,"start":"2024-07-01","end":"2024-07-01"}`)
	require.Equal(t, http.StatusOK, w.Code)

	msg := parse(t, w).Message
	assert.Contains(t, msg, "Jane")
	assert.Contains(t, msg, "$0 for 0 days")
}

func TestRentalDanglingReferenceFails(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/Rental",
		`{"customer_id":55,"equipment_id":1,"quantity":1,"start":"2024-07-01","end":"2024-07-03"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// no rental was persisted
	w = do(r, http.MethodGet, "/Rental", "")
	assert.Equal(t, "[]", string(parse(t, w).Data))
}

func TestDocsPage(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Equipment Rental API")
	assert.Contains(t, w.Body.String(), "/Rental")
}

func TestUpdateIsFullReplace(t *testing.T) {
	r := setupRouter(t)

	do(r, http.MethodPost, "/Customer",
		`{"f_name":"John","l_name":"Dewey","address":"123 South St.","city":"Somewhere","state":"MI","phone":"123-456-7890"}`)

	w := do(r, http.MethodPut, "/Customer/1",
		`{"f_name":"Johnny","l_name":"Dew","address":"9 West Ave.","city":"Nowhere","state":"TX","phone":"555-000-1111"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/Customer/1", "")
	var got map[string]any
	require.NoError(t, json.Unmarshal(parse(t, w).Data, &got))
	for k, v := range map[string]string{
		"f_name": "Johnny", "l_name": "Dew", "address": "9 West Ave.",
		"city": "Nowhere", "state": "TX", "phone": "555-000-1111",
	} {
		assert.Equal(t, v, got[k], fmt.Sprintf("field %s", k))
	}
}
