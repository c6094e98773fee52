package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID               uint      `gorm:"primaryKey;column:user_id"`
	FirstName        string    `gorm:"size:255"`
	LastName         string    `gorm:"size:255"`
	Email            string    `gorm:"uniqueIndex;size:255"`
	PasswordHash     []byte    `gorm:"column:password_hash"`
	Salt             []byte
	TempPasswordHash []byte    `gorm:"column:temp_password_hash"`
	TempSalt         []byte
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, id uint, firstName, lastName, email string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("user_id = ?", id).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
	}).Error
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id uint, hash, salt []byte) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("user_id = ?", id).Updates(map[string]interface{}{
		"password_hash": hash,
		"salt":          salt,
	}).Error
}

// UpdateTempPassword implements domain.UserRepository. Nil hash and salt
// clear the temporary credential pair.
func (r *UserRepositoryImpl) UpdateTempPassword(ctx context.Context, id uint, hash, salt []byte) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("user_id = ?", id).Updates(map[string]interface{}{
		"temp_password_hash": hash,
		"temp_salt":          salt,
	}).Error
}

// Delete implements domain.UserRepository. Saved-medication rows cascade
// with the user.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&DBSavedMedication{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", id).Delete(&DBUser{}).Error
	})
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		Salt:             user.Salt,
		TempPasswordHash: user.TempPasswordHash,
		TempSalt:         user.TempSalt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		FirstName:        dbUser.FirstName,
		LastName:         dbUser.LastName,
		Email:            dbUser.Email,
		PasswordHash:     dbUser.PasswordHash,
		Salt:             dbUser.Salt,
		TempPasswordHash: dbUser.TempPasswordHash,
		TempSalt:         dbUser.TempSalt,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
