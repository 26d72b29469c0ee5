package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alexweb-api/database"
	"alexweb-api/middleware"
	"alexweb-api/utils"
)

type envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Errors  []utils.FieldError `json:"errors"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.UseJSONFieldNames()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	r := gin.New()
	r.Use(middleware.ErrorHandler(log))
	SetupRoutes(r, db, nil, log)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
		}
	}
	return w, env
}

func f150Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":         "2024 Ford F-150",
		"price":        "$45,200",
		"image":        "/f150.jpg",
		"images":       []string{"/f150.jpg", "/f150-2.jpg"},
		"mileage":      "5,800",
		"transmission": "Automatic",
		"fuel":         "Gasoline",
		"year":         "2024",
		"badge":        "New Arrival",
		"condition":    "New",
	}
}

func TestHealthEndpoints(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/health status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("/api/health status = %d", w.Code)
	}
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Success || env.Message != "Route not found" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestVehicleCreateScenario(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/vehicles", f150Payload())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope: %s", w.Body.String())
	}

	var vehicle struct {
		ID        uint     `json:"id"`
		Images    []string `json:"images"`
		CreatedAt string   `json:"createdAt"`
		UpdatedAt string   `json:"updatedAt"`
	}
	if err := json.Unmarshal(env.Data, &vehicle); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if vehicle.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if len(vehicle.Images) != 2 || vehicle.Images[0] != "/f150.jpg" || vehicle.Images[1] != "/f150-2.jpg" {
		t.Fatalf("expected 2 images in supplied order, got %v", vehicle.Images)
	}
	if vehicle.CreatedAt == "" || vehicle.UpdatedAt == "" {
		t.Fatalf("expected server-assigned timestamps")
	}
}

func TestVehicleGetByIDNotFound(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/vehicles/9999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Success || env.Message != "Vehicle not found" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestVehicleNonNumericIDFallsThroughToNotFound(t *testing.T) {
	r := setupTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/vehicles/abc", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestVehicleUpdateNotFound(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodPut, "/api/vehicles/9999", map[string]interface{}{
		"price": "$1",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Message != "Vehicle not found" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestVehicleDeleteLifecycle(t *testing.T) {
	r := setupTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/vehicles", f150Payload())

	w, env := doJSON(t, r, http.MethodDelete, "/api/vehicles/1", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/vehicles/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", w.Code)
	}
}

func TestInvalidCategoryShortCircuits(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/popular-items/colour", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Success || env.Message != "Invalid category. Must be 'body_style', 'make', or 'model'" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPopularItemLifecycle(t *testing.T) {
	r := setupTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/popular-items/make", map[string]interface{}{
		"name": "Toyota", "count": 342,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("upsert status = %d (%s)", w.Code, w.Body.String())
	}
	doJSON(t, r, http.MethodPost, "/api/popular-items/make", map[string]interface{}{
		"name": "Honda", "count": 298,
	})

	w, env := doJSON(t, r, http.MethodGet, "/api/popular-items/make", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var items []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Toyota" || items[1].Name != "Honda" {
		t.Fatalf("expected Toyota before Honda, got %+v", items)
	}

	w, _ = doJSON(t, r, http.MethodPut, "/api/popular-items/make/Toyota", map[string]interface{}{
		"count": 350,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPut, "/api/popular-items/make/Subaru", map[string]interface{}{
		"count": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("update on missing pair status = %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/popular-items/make/Toyota", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
}

func TestPopularItemAllCategoriesPresent(t *testing.T) {
	r := setupTestRouter(t)

	_, env := doJSON(t, r, http.MethodGet, "/api/popular-items", nil)
	var all map[string]json.RawMessage
	if err := json.Unmarshal(env.Data, &all); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	for _, key := range []string{"body_style", "make", "model"} {
		if _, ok := all[key]; !ok {
			t.Fatalf("missing category %q in %s", key, string(env.Data))
		}
	}
}

func TestContactValidationFailure(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "M",
		"subject": "Hi",
		"message": "too short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if env.Message != "Validation failed" || len(env.Errors) == 0 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	paths := make(map[string]bool)
	for _, fe := range env.Errors {
		paths[fe.Path] = true
	}
	if !paths["email"] {
		t.Fatalf("expected an error on the email field, got %+v", env.Errors)
	}
}

func TestContactCreateSuccess(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Maria Gonzalez",
		"email":   "maria@example.com",
		"subject": "Trade-in question",
		"message": "Do you take trade-ins on financed vehicles?",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if env.Message != "Contact message sent successfully" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestFinanceValidationFailure(t *testing.T) {
	r := setupTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/finance", map[string]interface{}{
		"firstName": "Maria",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if env.Message != "Validation failed" || len(env.Errors) == 0 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestFinanceCreateStoresDocument(t *testing.T) {
	r := setupTestRouter(t)

	payload := map[string]interface{}{
		"firstName":           "Maria",
		"lastName":            "Gonzalez",
		"email":               "maria@example.com",
		"phone":               "2105550199",
		"ssn":                 "123-45-6789",
		"dateOfBirth":         "1990-04-12",
		"address":             "100 Main Street",
		"city":                "San Antonio",
		"state":               "TX",
		"zipCode":             "78201",
		"residenceType":       "rent",
		"timeAtResidence":     "3",
		"mortgageRentPayment": "1200",
		"employerName":        "Acme Co",
		"employerAddress":     "200 Industrial Blvd",
		"employerCity":        "San Antonio",
		"employerState":       "TX",
		"employerZip":         "78202",
		"businessPhone":       "2105550200",
		"extraFutureField":    "kept verbatim",
	}

	w, env := doJSON(t, r, http.MethodPost, "/api/finance", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if env.Message != "Finance application submitted successfully" {
		t.Fatalf("unexpected message: %q", env.Message)
	}

	var application struct {
		ID   uint                   `json:"id"`
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(env.Data, &application); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if application.Data["extraFutureField"] != "kept verbatim" {
		t.Fatalf("document dropped unknown field: %+v", application.Data)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/finance/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch status = %d", w.Code)
	}
}
