package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

const (
	freeTextLimit  = 10
	attributeLimit = 50
)

// MedicationRepositoryImpl implements domain.MedicationRepository using GORM
type MedicationRepositoryImpl struct {
	db *gorm.DB
}

// DBMedication represents the database model for Medication
type DBMedication struct {
	ID           uint     `gorm:"primaryKey;column:med_id"`
	RxString     string   `gorm:"size:512"`
	MedName      string   `gorm:"size:255;index"`
	MedDetails   string   `gorm:"type:text"`
	Shape        string   `gorm:"size:64"`
	Size         string   `gorm:"size:64"`
	ImprintFront string   `gorm:"size:128"`
	ImprintBack  string   `gorm:"size:128"`
	Color        string   `gorm:"size:64"`
	Price        *float64
	PriceSource  string   `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (DBMedication) TableName() string {
	return "medications"
}

// DBSavedMedication represents the user:medication mapping. The composite
// primary key makes saves idempotent.
type DBSavedMedication struct {
	UserID uint `gorm:"primaryKey;column:user_id"`
	MedID  uint `gorm:"primaryKey;column:med_id"`
}

// TableName returns the table name for GORM
func (DBSavedMedication) TableName() string {
	return "saved_medications"
}

// NewMedicationRepository creates a new medication repository
func NewMedicationRepository(db *gorm.DB) domain.MedicationRepository {
	return &MedicationRepositoryImpl{db: db}
}

// Create implements domain.MedicationRepository
func (r *MedicationRepositoryImpl) Create(ctx context.Context, med *domain.Medication) error {
	dbMed := r.domainToDB(med)
	if err := r.db.WithContext(ctx).Create(dbMed).Error; err != nil {
		return err
	}
	med.ID = dbMed.ID
	return nil
}

// FindByID implements domain.MedicationRepository
func (r *MedicationRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Medication, error) {
	var dbMed DBMedication
	err := r.db.WithContext(ctx).Where("med_id = ?", id).First(&dbMed).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrMedicationNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbMed), nil
}

// Delete implements domain.MedicationRepository
func (r *MedicationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("med_id = ?", id).Delete(&DBSavedMedication{}).Error; err != nil {
			return err
		}
		return tx.Where("med_id = ?", id).Delete(&DBMedication{}).Error
	})
}

// SearchFreeText implements domain.MedicationRepository. The query is matched
// case-insensitively as a substring against every searchable column, OR-ed
// together. Result order is storage order; callers must not rely on ranking.
func (r *MedicationRepositoryImpl) SearchFreeText(ctx context.Context, query string) ([]domain.Medication, error) {
	pattern := "%" + strings.ToUpper(query) + "%"

	var dbMeds []DBMedication
	err := r.db.WithContext(ctx).
		Where(r.db.
			Where("UPPER(rx_string) LIKE ?", pattern).
			Or("UPPER(med_name) LIKE ?", pattern).
			Or("UPPER(shape) LIKE ?", pattern).
			Or("UPPER(size) LIKE ?", pattern).
			Or("UPPER(imprint_front) LIKE ?", pattern).
			Or("UPPER(imprint_back) LIKE ?", pattern).
			Or("UPPER(color) LIKE ?", pattern).
			Or("CAST(price AS TEXT) LIKE ?", pattern)).
		Limit(freeTextLimit).
		Find(&dbMeds).Error
	if err != nil {
		return nil, err
	}

	return r.dbSliceToDomain(dbMeds), nil
}

// SearchByAttributes implements domain.MedicationRepository. Present filters
// are upper-cased and AND-ed in a fixed fold order; absent filters impose no
// constraint, so an empty filter set yields the unconstrained result set
// bounded by the cap. Color2 is matched against the color column, like the
// service this replaces.
func (r *MedicationRepositoryImpl) SearchByAttributes(ctx context.Context, filters domain.SearchFilters) ([]domain.Medication, error) {
	tx := r.db.WithContext(ctx).Model(&DBMedication{})

	if filters.Shape != nil {
		tx = tx.Where("UPPER(shape) LIKE ?", contains(*filters.Shape))
	}
	if filters.Size != nil {
		tx = tx.Where("UPPER(size) LIKE ?", contains(*filters.Size))
	}
	if filters.ImprintFront != nil {
		tx = tx.Where("UPPER(imprint_front) LIKE ?", contains(*filters.ImprintFront))
	}
	if filters.ImprintBack != nil {
		tx = tx.Where("UPPER(imprint_back) LIKE ?", contains(*filters.ImprintBack))
	}
	if filters.Color != nil {
		tx = tx.Where("UPPER(color) LIKE ?", contains(*filters.Color))
	}
	if filters.Color2 != nil {
		tx = tx.Where("UPPER(color) LIKE ?", contains(*filters.Color2))
	}

	var dbMeds []DBMedication
	if err := tx.Limit(attributeLimit).Find(&dbMeds).Error; err != nil {
		return nil, err
	}

	return r.dbSliceToDomain(dbMeds), nil
}

// Save implements domain.MedicationRepository with upsert-or-ignore semantics
func (r *MedicationRepositoryImpl) Save(ctx context.Context, userID, medID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&DBSavedMedication{UserID: userID, MedID: medID}).Error
}

// Unsave implements domain.MedicationRepository
func (r *MedicationRepositoryImpl) Unsave(ctx context.Context, userID, medID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND med_id = ?", userID, medID).
		Delete(&DBSavedMedication{}).Error
}

// IsSaved implements domain.MedicationRepository
func (r *MedicationRepositoryImpl) IsSaved(ctx context.Context, userID, medID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBSavedMedication{}).
		Where("user_id = ? AND med_id = ?", userID, medID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListSaved implements domain.MedicationRepository
func (r *MedicationRepositoryImpl) ListSaved(ctx context.Context, userID uint) ([]domain.Medication, error) {
	var dbMeds []DBMedication
	err := r.db.WithContext(ctx).Model(&DBMedication{}).
		Joins("INNER JOIN saved_medications ON saved_medications.med_id = medications.med_id").
		Where("saved_medications.user_id = ?", userID).
		Find(&dbMeds).Error
	if err != nil {
		return nil, err
	}
	return r.dbSliceToDomain(dbMeds), nil
}

func contains(v string) string {
	return "%" + strings.ToUpper(v) + "%"
}

func (r *MedicationRepositoryImpl) domainToDB(med *domain.Medication) *DBMedication {
	return &DBMedication{
		ID:           med.ID,
		RxString:     med.RxString,
		MedName:      med.MedName,
		MedDetails:   med.MedDetails,
		Shape:        med.Shape,
		Size:         med.Size,
		ImprintFront: med.ImprintFront,
		ImprintBack:  med.ImprintBack,
		Color:        med.Color,
		Price:        med.Price,
		PriceSource:  med.PriceSource,
	}
}

func (r *MedicationRepositoryImpl) dbToDomain(dbMed *DBMedication) *domain.Medication {
	return &domain.Medication{
		ID:           dbMed.ID,
		RxString:     dbMed.RxString,
		MedName:      dbMed.MedName,
		MedDetails:   dbMed.MedDetails,
		Shape:        dbMed.Shape,
		Size:         dbMed.Size,
		ImprintFront: dbMed.ImprintFront,
		ImprintBack:  dbMed.ImprintBack,
		Color:        dbMed.Color,
		Price:        dbMed.Price,
		PriceSource:  dbMed.PriceSource,
	}
}

func (r *MedicationRepositoryImpl) dbSliceToDomain(dbMeds []DBMedication) []domain.Medication {
	meds := make([]domain.Medication, 0, len(dbMeds))
	for i := range dbMeds {
		meds = append(meds, *r.dbToDomain(&dbMeds[i]))
	}
	return meds
}
