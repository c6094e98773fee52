package domain

import "time"

// User represents a registered account
type User struct {
	ID               uint
	FirstName        string
	LastName         string
	Email            string
	PasswordHash     []byte
	Salt             []byte
	TempPasswordHash []byte
	TempSalt         []byte
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasTempPassword reports whether a password-reset window is open for the user
func (u *User) HasTempPassword() bool {
	return len(u.TempPasswordHash) > 0 && len(u.TempSalt) > 0
}

// Session represents an issued session token bound to a user
type Session struct {
	Token    string
	UserID   uint
	IssuedAt time.Time
}

// Medication represents a catalog entry
type Medication struct {
	ID           uint
	RxString     string
	MedName      string
	MedDetails   string
	Shape        string
	Size         string
	ImprintFront string
	ImprintBack  string
	Color        string
	Price        *float64
	PriceSource  string
}

// SearchFilters carries the optional physical-attribute predicates for a
// structured medication search. Nil fields impose no constraint. Color2 is
// matched against the same color column as Color; the original service
// behaved this way and clients depend on it.
type SearchFilters struct {
	Shape        *string
	Size         *string
	ImprintFront *string
	ImprintBack  *string
	Color        *string
	Color2       *string
}

// Empty reports whether no filter field is set
func (f SearchFilters) Empty() bool {
	return f.Shape == nil && f.Size == nil && f.ImprintFront == nil &&
		f.ImprintBack == nil && f.Color == nil && f.Color2 == nil
}

// Prediction represents the image classifier's output for an uploaded photo
type Prediction struct {
	Label      string
	Confidence float64
}

// ProfileUpdate carries a partial update to the mutable user fields.
// Nil fields keep the stored value.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}
