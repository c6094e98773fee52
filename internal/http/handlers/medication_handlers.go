package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// MedicationHandlers handles catalog, search, and classification requests
type MedicationHandlers struct {
	medRepo   domain.MedicationRepository
	searchSvc domain.SearchService
	staticDir string
}

// NewMedicationHandlers creates new medication handlers
func NewMedicationHandlers(medRepo domain.MedicationRepository, searchSvc domain.SearchService, staticDir string) *MedicationHandlers {
	return &MedicationHandlers{
		medRepo:   medRepo,
		searchSvc: searchSvc,
		staticDir: staticDir,
	}
}

// PutMedicationRequest represents a catalog insert request
type PutMedicationRequest struct {
	RxString     string   `json:"rxString"`
	MedName      string   `json:"medName" binding:"required"`
	MedDetails   string   `json:"medDetails" binding:"required"`
	Shape        string   `json:"shape"`
	Size         string   `json:"size"`
	ImprintFront string   `json:"imprintFront"`
	ImprintBack  string   `json:"imprintBack"`
	Color        string   `json:"color"`
	Price        *float64 `json:"price"`
	PriceSource  string   `json:"priceSource"`
}

// SearchRequest represents a free-text search request
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// DescriptionRequest represents a physical-description search request.
// Absent fields impose no constraint.
type DescriptionRequest struct {
	Shape        *string `json:"shape"`
	Size         *string `json:"size"`
	ImprintFront *string `json:"imprintFront"`
	ImprintBack  *string `json:"imprintBack"`
	Color        *string `json:"color"`
	Color2       *string `json:"color2"`
}

// GetMedication returns catalog details for one medication
func (h *MedicationHandlers) GetMedication(c *gin.Context) {
	medID, err := strconv.ParseUint(c.Param("med_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unable to fetch medication data."})
		return
	}

	med, err := h.medRepo.FindByID(c.Request.Context(), uint(medID))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unable to fetch medication data."})
		return
	}

	c.JSON(http.StatusOK, medicationJSON(*med))
}

// PutMedication creates a catalog entry
func (h *MedicationHandlers) PutMedication(c *gin.Context) {
	var req PutMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	med := &domain.Medication{
		RxString:     req.RxString,
		MedName:      req.MedName,
		MedDetails:   req.MedDetails,
		Shape:        req.Shape,
		Size:         req.Size,
		ImprintFront: req.ImprintFront,
		ImprintBack:  req.ImprintBack,
		Color:        req.Color,
		Price:        req.Price,
		PriceSource:  req.PriceSource,
	}

	if err := h.medRepo.Create(c.Request.Context(), med); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when creating medication entry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"medId": med.ID})
}

// DeleteMedication removes a catalog entry
func (h *MedicationHandlers) DeleteMedication(c *gin.Context) {
	medID, err := strconv.ParseUint(c.Param("med_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when deleting medication entry."})
		return
	}

	if err := h.medRepo.Delete(c.Request.Context(), uint(medID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when deleting medication entry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication entry deleted."})
}

// SearchMedications handles free-text search
func (h *MedicationHandlers) SearchMedications(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	results, err := h.searchSvc.FreeText(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Unable to get medication results for provided query."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": medicationListJSON(results)})
}

// ClassifyByDescription handles structured physical-attribute search
func (h *MedicationHandlers) ClassifyByDescription(c *gin.Context) {
	var req DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	filters := domain.SearchFilters{
		Shape:        req.Shape,
		Size:         req.Size,
		ImprintFront: req.ImprintFront,
		ImprintBack:  req.ImprintBack,
		Color:        req.Color,
		Color2:       req.Color2,
	}

	results, err := h.searchSvc.ByAttributes(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Unable to get medication results for provided physical description."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": medicationListJSON(results)})
}

// ClassifyByImage handles photo classification followed by catalog lookup
func (h *MedicationHandlers) ClassifyByImage(c *gin.Context) {
	fileHeader, err := c.FormFile("img")
	if err != nil {
		abortValidation(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when labeling pill image."})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when labeling pill image."})
		return
	}

	prediction, results, err := h.searchSvc.ClassifyImage(c.Request.Context(), image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when labeling pill image."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predMedClass":   prediction.Label,
		"predConfidence": fmt.Sprintf("%.2f", prediction.Confidence),
		"results":        medicationListJSON(results),
	})
}

// GetMedicationImage serves the sample image for a classifier-known med name
func (h *MedicationHandlers) GetMedicationImage(c *gin.Context) {
	name := strings.ReplaceAll(c.Param("med_name"), "%20", " ")

	for _, ext := range []string{".JPG", ".PNG"} {
		path := filepath.Join(h.staticDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			c.File(path)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Unable to find image for provided medication."})
}

// medicationJSON shapes one medication for a response body
func medicationJSON(m domain.Medication) gin.H {
	return gin.H{
		"medId":        m.ID,
		"rxString":     m.RxString,
		"medName":      m.MedName,
		"medDetails":   m.MedDetails,
		"shape":        m.Shape,
		"size":         m.Size,
		"imprintFront": m.ImprintFront,
		"imprintBack":  m.ImprintBack,
		"color":        m.Color,
		"price":        m.Price,
		"priceSource":  m.PriceSource,
	}
}

// medicationListJSON shapes a result list, never null
func medicationListJSON(meds []domain.Medication) []gin.H {
	out := make([]gin.H, 0, len(meds))
	for _, m := range meds {
		out = append(out, medicationJSON(m))
	}
	return out
}
