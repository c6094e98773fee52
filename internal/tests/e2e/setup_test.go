package e2e

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/http/handlers"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/http/middleware"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/infrastructure/auth"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/infrastructure/repositories"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/mocks"

	httpx "github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/http"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/services"
)

// TestServer wires the full stack over in-memory stores: SQLite for users and
// medications, miniredis for sessions. The mailer and classifier are test
// doubles so flows that touch them stay observable.
type TestServer struct {
	Router     *gin.Engine
	DB         *gorm.DB
	Mailer     *mocks.MockMailer
	Classifier *mocks.MockClassifier
}

func newTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBMedication{},
		&repositories.DBSavedMedication{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	userRepo := repositories.NewUserRepository(db)
	medRepo := repositories.NewMedicationRepository(db)
	sessionRepo := repositories.NewSessionRepository(redisClient, time.Hour)

	mailer := mocks.NewMockMailer()
	classifier := mocks.NewMockClassifier()
	passwordSvc := auth.NewPasswordService()
	sessionSvc := services.NewSessionService(sessionRepo)
	accountSvc := services.NewAccountService(
		userRepo, medRepo, sessionSvc, passwordSvc, mailer, services.NewAuditLogger(), "noreply.snaprx@gmail.com")
	searchSvc := services.NewSearchService(medRepo, classifier)

	router := httpx.BuildRouter(
		handlers.NewAccountHandlers(accountSvc),
		handlers.NewMedicationHandlers(medRepo, searchSvc, t.TempDir()),
		middleware.NewSessionMW(sessionSvc),
	)

	return &TestServer{
		Router:     router,
		DB:         db,
		Mailer:     mailer,
		Classifier: classifier,
	}
}

func (ts *TestServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) doMultipart(t *testing.T, path, field string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "upload.jpg")
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatalf("failed to write upload payload: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// signup registers an account and returns its id and session token
func (ts *TestServer) signup(t *testing.T, email, password string) (uint, string) {
	t.Helper()

	w := ts.do(t, http.MethodPost, "/api/v1/users/signup", "", map[string]string{
		"email":     email,
		"password":  password,
		"firstName": "Test",
		"lastName":  "User",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed with status %d: %s", w.Code, w.Body.String())
	}
	body := ts.decode(t, w)
	return uint(body["userId"].(float64)), body["token"].(string)
}

// seedMedication inserts one catalog entry through the API
func (ts *TestServer) seedMedication(t *testing.T, name, shape, color string) uint {
	t.Helper()

	w := ts.do(t, http.MethodPut, "/api/v1/medications", "", map[string]interface{}{
		"medName":    name,
		"medDetails": name + " details",
		"shape":      shape,
		"color":      color,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("medication insert failed with status %d: %s", w.Code, w.Body.String())
	}
	body := ts.decode(t, w)
	return uint(body["medId"].(float64))
}
