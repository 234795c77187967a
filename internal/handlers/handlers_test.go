package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/tyforge-backend/internal/config"
	"github.com/tyforge/tyforge-backend/internal/database"
	"github.com/tyforge/tyforge-backend/internal/handlers"
	"github.com/tyforge/tyforge-backend/internal/routes"
	"github.com/tyforge/tyforge-backend/internal/services"
	"github.com/tyforge/tyforge-backend/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed test db: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
		CORSOrigins: "*",
	}

	files, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to set up file store: %v", err)
	}

	authService := services.NewAuthService(db, cfg)
	accountService := services.NewAccountService(db)
	onboardingService := services.NewOnboardingService(db)
	catalogService := services.NewCatalogService(db)

	app := fiber.New()
	routes.Setup(app, cfg, authService,
		handlers.NewAuthHandler(authService),
		handlers.NewAccountHandler(accountService, files),
		handlers.NewOnboardingHandler(onboardingService, accountService, files),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewBlackbookHandler(files),
		handlers.NewHealthHandler(),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}

	var parsed map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}
	return resp, parsed
}

func signup(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/signup", "", map[string]string{
		"email":    email,
		"password": "secret-password",
		"name":     "Some Student",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup returned %d: %v", resp.StatusCode, body)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatal("signup did not return a token")
	}
	return token
}

func uploadPDF(t *testing.T, app *fiber.App, path, token, filename string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 fake content")); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	var parsed map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}
	return resp, parsed
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["message"] != "running backend" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestSignupConflictAndLogin(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "student@example.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/signup", "", map[string]string{
		"email": "student@example.com", "password": "other", "name": "Dup",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"email": "student@example.com", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"email": "student@example.com", "password": "secret-password",
	})
	if resp.StatusCode != http.StatusOK || body["access_token"] == "" {
		t.Fatalf("expected login to succeed, got %d: %v", resp.StatusCode, body)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/api/me", "not-a-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", resp.StatusCode)
	}

	token := signup(t, app, "student@example.com")
	resp, body := doJSON(t, app, http.MethodGet, "/api/me", token, nil)
	if resp.StatusCode != http.StatusOK || body["email"] != "student@example.com" {
		t.Fatalf("expected own profile, got %d: %v", resp.StatusCode, body)
	}
}

func TestSynopsisUploadFlow(t *testing.T) {
	app := newTestApp(t)
	token := signup(t, app, "student@example.com")

	resp, _ := uploadPDF(t, app, "/api/synopsis/upload", token, "report.txt")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for .txt upload, got %d", resp.StatusCode)
	}

	resp, _ = uploadPDF(t, app, "/api/synopsis/upload", token, "report.pdf")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for .pdf upload, got %d", resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/synopsis", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer listResp.Body.Close()

	var rows []map[string]interface{}
	if err := json.NewDecoder(listResp.Body).Decode(&rows); err != nil {
		t.Fatalf("failed to decode synopsis list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 synopsis row, got %d", len(rows))
	}
	if rows[0]["original_name"] != "report.pdf" {
		t.Fatalf("expected original name kept, got %v", rows[0]["original_name"])
	}
	if rows[0]["file_name"] == "report.pdf" {
		t.Fatal("stored path must differ from the original name")
	}
}

func TestOnboardingFlowOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := signup(t, app, "student@example.com")

	_, status := doJSON(t, app, http.MethodGet, "/api/user/signup-status", token, nil)
	if status["signup_step"] != "plan_selection" {
		t.Fatalf("fresh user should be at plan_selection, got %v", status["signup_step"])
	}

	resp, _ := doJSON(t, app, http.MethodPost, "/api/select-plan", token, map[string]interface{}{
		"plan_id":           "standard_plan",
		"selected_services": []string{"blog_writing"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("select plan returned %d", resp.StatusCode)
	}

	_, status = doJSON(t, app, http.MethodGet, "/api/user/signup-status", token, nil)
	if status["signup_step"] != "project_setup" || status["selected_plan_id"] != "standard_plan" {
		t.Fatalf("unexpected status after plan selection: %v", status)
	}

	// Re-selecting a plan is not in the transition table.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/select-plan", token, map[string]interface{}{
		"plan_id": "premium_plan",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for repeated plan selection, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/create-project-idea", token, map[string]interface{}{
		"title":       "Inventory Tracker",
		"description": "Track stock across outlets",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create project idea returned %d", resp.StatusCode)
	}
	projectID, _ := body["project_id"].(string)
	if projectID == "" {
		t.Fatalf("expected a project id, got %v", body)
	}

	resp, _ = uploadPDF(t, app, "/api/upload-synopsis/"+projectID, token, "synopsis.pdf")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("project synopsis upload returned %d", resp.StatusCode)
	}

	_, status = doJSON(t, app, http.MethodGet, "/api/user/signup-status", token, nil)
	if status["signup_step"] != "completed" || status["onboarding_completed"] != true {
		t.Fatalf("expected completed onboarding, got %v", status)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var plans []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&plans); err != nil {
		t.Fatal(err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	if _, ok := plans[0]["features"].([]interface{}); !ok {
		t.Fatalf("expected features split into a list, got %v", plans[0]["features"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/services", nil)
	resp2, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	var services []map[string]interface{}
	if err := json.NewDecoder(resp2.Body).Decode(&services); err != nil {
		t.Fatal(err)
	}
	if len(services) != 6 {
		t.Fatalf("expected 6 services, got %d", len(services))
	}
}

func TestBlackbookDownload(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/blackbook/download", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatal("expected PDF placeholder content")
	}
}
