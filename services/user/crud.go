package user

import (
	"fmt"
	"time"

	"swiftfleet/models"
	"swiftfleet/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return userRec, nil
}

// UpdateProfile applies a partial update to the editable profile fields.
func (s *DefaultUserService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	updateFields := bson.M{
		"updated_at": time.Now(),
	}
	if update.Name != "" {
		updateFields["name"] = update.Name
	}
	if update.Phone != "" {
		updateFields["phone"] = update.Phone
	}

	if err := s.Repo.UpdateSetDocument(userID, updateFields); err != nil {
		utils.GetLogger().Error("UpdateProfile: update failed", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.Repo.GetByID(userID)
}

// UpdateFCMToken stores the push token for the user's device.
func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	updateDoc := bson.M{
		"fcm_token":  token,
		"updated_at": time.Now(),
	}
	return s.Repo.UpdateSetDocument(userID, updateDoc)
}

// GetAllUsers retrieves all users.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
