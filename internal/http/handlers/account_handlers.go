package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// AccountHandlers handles account and saved-medication HTTP requests
type AccountHandlers struct {
	accountSvc domain.AccountService
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc}
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdatePasswordRequest represents a password update request
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdateUserRequest represents a partial profile update request
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// DeleteUserRequest represents an account deletion request
type DeleteUserRequest struct {
	Password string `json:"password" binding:"required"`
}

// CheckSavedRequest represents a saved-medication existence check
type CheckSavedRequest struct {
	MedID uint `json:"medId" binding:"required"`
}

// Signup handles account creation
func (h *AccountHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	userID, token, err := h.accountSvc.Signup(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Another user with that email address already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to create account. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "token": token})
}

// Login handles authentication
func (h *AccountHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	userID, token, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid credentials."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "token": token})
}

// ResetPassword handles temporary-password issuance
func (h *AccountHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	err := h.accountSvc.ResetPassword(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Could not find an account matching the given email address."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// ValidateSession confirms the session gate passed
func (h *AccountHandlers) ValidateSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Session validated."})
}

// Logout revokes the presented session token
func (h *AccountHandlers) Logout(c *gin.Context) {
	token := c.GetString("session_token")
	if err := h.accountSvc.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

// UpdatePassword handles password changes
func (h *AccountHandlers) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	userID := c.GetUint("user_id")
	err := h.accountSvc.UpdatePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid credentials."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when updating the password."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User password updated."})
}

// GetUser returns profile details plus the saved-medication list
func (h *AccountHandlers) GetUser(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.accountSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Invalid userId."})
		return
	}

	saved, err := h.accountSvc.ListSavedMedications(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to retrieve user medication data."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"firstName":        user.FirstName,
		"lastName":         user.LastName,
		"email":            user.Email,
		"savedMedications": medicationListJSON(saved),
	})
}

// UpdateUser handles partial profile updates
func (h *AccountHandlers) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	userID := c.GetUint("user_id")
	update := domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	err := h.accountSvc.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusForbidden, gin.H{"message": "Another user with that email address already exists."})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid userId " + strconv.FormatUint(uint64(userID), 10) + "."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when updating user details."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully updated user details."})
}

// DeleteUser handles account deletion
func (h *AccountHandlers) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	userID := c.GetUint("user_id")
	err := h.accountSvc.DeleteAccount(c.Request.Context(), userID, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid credentials."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when deleting the account."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User account deleted."})
}

// ListSavedMedications returns the user's saved medications
func (h *AccountHandlers) ListSavedMedications(c *gin.Context) {
	userID := c.GetUint("user_id")

	meds, err := h.accountSvc.ListSavedMedications(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to retrieve user medication data."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"medications": medicationListJSON(meds)})
}

// SaveMedication adds a medication to the user's saved list
func (h *AccountHandlers) SaveMedication(c *gin.Context) {
	medID, err := strconv.ParseUint(c.Param("med_id"), 10, 32)
	if err != nil {
		abortValidation(c, err)
		return
	}

	userID := c.GetUint("user_id")
	if err := h.accountSvc.SaveMedication(c.Request.Context(), userID, uint(medID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when creating user:medication mapping."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Created user:medication mapping."})
}

// CheckSavedMedication reports whether the user has the medication saved
func (h *AccountHandlers) CheckSavedMedication(c *gin.Context) {
	var req CheckSavedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	userID := c.GetUint("user_id")
	saved, err := h.accountSvc.IsMedicationSaved(c.Request.Context(), userID, req.MedID)
	if err != nil {
		// A lookup failure reads as not-saved, like the service this replaces
		c.JSON(http.StatusOK, gin.H{"isMedicationSaved": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isMedicationSaved": saved})
}

// RemoveSavedMedication deletes a medication from the user's saved list
func (h *AccountHandlers) RemoveSavedMedication(c *gin.Context) {
	medID, err := strconv.ParseUint(c.Param("med_id"), 10, 32)
	if err != nil {
		abortValidation(c, err)
		return
	}

	userID := c.GetUint("user_id")
	if err := h.accountSvc.RemoveSavedMedication(c.Request.Context(), userID, uint(medID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred when deleting user:medication mapping."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted user:medication mapping"})
}
