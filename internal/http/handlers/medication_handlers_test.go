package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/mocks"
)

func newMedicationRouter(t *testing.T, medRepo domain.MedicationRepository, searchSvc domain.SearchService, staticDir string) *gin.Engine {
	t.Helper()

	if medRepo == nil {
		medRepo = mocks.NewMockMedicationRepository()
	}
	if searchSvc == nil {
		searchSvc = mocks.NewMockSearchService()
	}

	h := NewMedicationHandlers(medRepo, searchSvc, staticDir)
	r := gin.New()
	r.PUT("/api/v1/medications", h.PutMedication)
	r.POST("/api/v1/medications/search", h.SearchMedications)
	r.POST("/api/v1/medications/classify-by-image", h.ClassifyByImage)
	r.POST("/api/v1/medications/classify-by-description", h.ClassifyByDescription)
	r.GET("/api/v1/medications/img/:med_name", h.GetMedicationImage)
	r.GET("/api/v1/medications/:med_id", h.GetMedication)
	r.DELETE("/api/v1/medications/:med_id", h.DeleteMedication)
	return r
}

func TestMedicationHandlers_GetMedication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		medRepo := mocks.NewMockMedicationRepository()
		price := 12.50
		medRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Medication, error) {
			return &domain.Medication{
				ID:      id,
				MedName: "Ibuprofen 200 MG Oral Tablet",
				Shape:   "ROUND",
				Price:   &price,
			}, nil
		}

		r := newMedicationRouter(t, medRepo, nil, "")
		w := performJSON(t, r, http.MethodGet, "/api/v1/medications/3", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["medId"] != float64(3) {
			t.Errorf("expected medId 3, got %v", body["medId"])
		}
		if body["medName"] != "Ibuprofen 200 MG Oral Tablet" {
			t.Errorf("unexpected medName %v", body["medName"])
		}
		if body["price"] != 12.50 {
			t.Errorf("expected price 12.50, got %v", body["price"])
		}
	})

	t.Run("unknown entry", func(t *testing.T) {
		r := newMedicationRouter(t, nil, nil, "")
		w := performJSON(t, r, http.MethodGet, "/api/v1/medications/9999", nil)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != "Unable to fetch medication data." {
			t.Errorf("unexpected message %v", body["message"])
		}
	})
}

func TestMedicationHandlers_PutMedication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful insert returns the assigned ID", func(t *testing.T) {
		medRepo := mocks.NewMockMedicationRepository()
		medRepo.CreateFunc = func(ctx context.Context, med *domain.Medication) error {
			med.ID = 11
			return nil
		}

		r := newMedicationRouter(t, medRepo, nil, "")
		w := performJSON(t, r, http.MethodPut, "/api/v1/medications", PutMedicationRequest{
			MedName:    "Ibuprofen 200 MG Oral Tablet",
			MedDetails: "NSAID pain reliever",
			Shape:      "ROUND",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["medId"] != float64(11) {
			t.Errorf("expected medId 11, got %v", body["medId"])
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		r := newMedicationRouter(t, nil, nil, "")
		w := performJSON(t, r, http.MethodPut, "/api/v1/medications", map[string]string{"shape": "ROUND"})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}

func TestMedicationHandlers_SearchMedications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("results returned", func(t *testing.T) {
		searchSvc := mocks.NewMockSearchService()
		searchSvc.FreeTextFunc = func(ctx context.Context, query string) ([]domain.Medication, error) {
			if query != "ibup" {
				t.Errorf("expected query ibup, got %s", query)
			}
			return []domain.Medication{{ID: 1, MedName: "Ibuprofen 200 MG Oral Tablet"}}, nil
		}

		r := newMedicationRouter(t, nil, searchSvc, "")
		w := performJSON(t, r, http.MethodPost, "/api/v1/medications/search", SearchRequest{Query: "ibup"})

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		results, ok := body["results"].([]interface{})
		if !ok || len(results) != 1 {
			t.Fatalf("expected 1 result, got %v", body["results"])
		}
	})

	t.Run("no matches still returns a list", func(t *testing.T) {
		r := newMedicationRouter(t, nil, nil, "")
		w := performJSON(t, r, http.MethodPost, "/api/v1/medications/search", SearchRequest{Query: "zzzzz"})

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		results, ok := body["results"].([]interface{})
		if !ok {
			t.Fatalf("expected a results list, got %v", body["results"])
		}
		if len(results) != 0 {
			t.Errorf("expected empty results, got %d", len(results))
		}
	})

	t.Run("missing query", func(t *testing.T) {
		r := newMedicationRouter(t, nil, nil, "")
		w := performJSON(t, r, http.MethodPost, "/api/v1/medications/search", map[string]string{})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}

func TestMedicationHandlers_ClassifyByDescription(t *testing.T) {
	gin.SetMode(gin.TestMode)

	searchSvc := mocks.NewMockSearchService()
	var gotFilters domain.SearchFilters
	searchSvc.ByAttributesFunc = func(ctx context.Context, filters domain.SearchFilters) ([]domain.Medication, error) {
		gotFilters = filters
		return []domain.Medication{{ID: 1, MedName: "Ibuprofen 200 MG Oral Tablet"}}, nil
	}

	r := newMedicationRouter(t, nil, searchSvc, "")
	shape := "round"
	color := "white"
	w := performJSON(t, r, http.MethodPost, "/api/v1/medications/classify-by-description", DescriptionRequest{
		Shape: &shape,
		Color: &color,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotFilters.Shape == nil || *gotFilters.Shape != "round" {
		t.Error("expected shape filter forwarded")
	}
	if gotFilters.Size != nil || gotFilters.Color2 != nil {
		t.Error("absent fields must stay nil")
	}
}

func TestMedicationHandlers_ClassifyByImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buildUpload := func(t *testing.T, field string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, "pill.jpg")
		if err != nil {
			t.Fatalf("failed to build multipart body: %v", err)
		}
		if _, err := fw.Write([]byte{0xFF, 0xD8, 0xFF}); err != nil {
			t.Fatalf("failed to write image bytes: %v", err)
		}
		mw.Close()
		return &buf, mw.FormDataContentType()
	}

	t.Run("prediction with results", func(t *testing.T) {
		searchSvc := mocks.NewMockSearchService()
		searchSvc.ClassifyImageFunc = func(ctx context.Context, image []byte) (*domain.Prediction, []domain.Medication, error) {
			if len(image) == 0 {
				t.Error("expected image bytes forwarded")
			}
			return &domain.Prediction{Label: "Ibuprofen 200 MG", Confidence: 0.8731},
				[]domain.Medication{{ID: 1, MedName: "Ibuprofen 200 MG Oral Tablet"}}, nil
		}

		r := newMedicationRouter(t, nil, searchSvc, "")
		body, contentType := buildUpload(t, "img")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/medications/classify-by-image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		resp := decodeBody(t, w)
		if resp["predMedClass"] != "Ibuprofen 200 MG" {
			t.Errorf("unexpected predMedClass %v", resp["predMedClass"])
		}
		if resp["predConfidence"] != "0.87" {
			t.Errorf("expected confidence formatted to two decimals, got %v", resp["predConfidence"])
		}
	})

	t.Run("classifier failure", func(t *testing.T) {
		searchSvc := mocks.NewMockSearchService()
		searchSvc.ClassifyImageFunc = func(ctx context.Context, image []byte) (*domain.Prediction, []domain.Medication, error) {
			return nil, nil, errors.New("model not loaded")
		}

		r := newMedicationRouter(t, nil, searchSvc, "")
		body, contentType := buildUpload(t, "img")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/medications/classify-by-image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", w.Code)
		}
	})

	t.Run("missing file part", func(t *testing.T) {
		r := newMedicationRouter(t, nil, nil, "")
		body, contentType := buildUpload(t, "wrong-field")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/medications/classify-by-image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}

func TestMedicationHandlers_GetMedicationImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	staticDir := t.TempDir()
	imgPath := filepath.Join(staticDir, "Ibuprofen 200 MG.JPG")
	if err := os.WriteFile(imgPath, []byte{0xFF, 0xD8, 0xFF}, 0o644); err != nil {
		t.Fatalf("failed to write sample image: %v", err)
	}

	t.Run("known name serves the file", func(t *testing.T) {
		r := newMedicationRouter(t, nil, nil, staticDir)
		w := performJSON(t, r, http.MethodGet, "/api/v1/medications/img/Ibuprofen%20200%20MG", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		if !bytes.Equal(w.Body.Bytes(), []byte{0xFF, 0xD8, 0xFF}) {
			t.Error("expected the sample image bytes")
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		r := newMedicationRouter(t, nil, nil, staticDir)
		w := performJSON(t, r, http.MethodGet, "/api/v1/medications/img/Unknown", nil)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}

func TestMedicationHandlers_DeleteMedication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	medRepo := mocks.NewMockMedicationRepository()
	var deletedID uint
	medRepo.DeleteFunc = func(ctx context.Context, id uint) error {
		deletedID = id
		return nil
	}

	r := newMedicationRouter(t, medRepo, nil, "")
	w := performJSON(t, r, http.MethodDelete, "/api/v1/medications/5", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if deletedID != 5 {
		t.Errorf("expected deletion of entry 5, got %d", deletedID)
	}
}
