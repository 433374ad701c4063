package user

import (
	"swiftfleet/database/repository/user"
	"swiftfleet/models"
)

// UserService defines account and session operations.
type UserService interface {
	// Registration and authentication.
	Register(name, email, password, phone string) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	// Profile management.
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
	UpdateFCMToken(userID, token string) error

	// Admin / utility.
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and profile details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ProfileUpdate carries the editable profile fields; empty fields are left
// untouched.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
