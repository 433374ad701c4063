package user

import (
	"context"
	"fmt"
	"time"

	"swiftfleet/models"
	"swiftfleet/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register validates the signup data, creates the user record, and signs the
// new user in.
func (s *DefaultUserService) Register(name, email, password, phone string) (*AuthResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userRec := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
	}
	if err := s.Repo.Create(userRec); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueSession(userRec)
}

// Authenticate verifies credentials and issues a fresh session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueSession(userRec)
}

// issueSession mints a JWT, stores its hash on the user record and in the
// auth cache, and builds the auth response.
func (s *DefaultUserService) issueSession(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	updateDoc := bson.M{
		"token_hash": tokenHash,
		"updated_at": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(userRec.ID, updateDoc); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		cacheKey := utils.AuthCachePrefix + userRec.ID
		if err := authCache.Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("issueSession: failed to prime auth cache", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
		Phone: userRec.Phone,
	}, nil
}

// RevokeAuthToken signs the user out by clearing the stored token hash.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		cacheKey := utils.AuthCachePrefix + userID
		if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
			utils.GetLogger().Warn("RevokeAuthToken: failed to clear auth cache", zap.Error(err))
		}
	}

	updateDoc := bson.M{
		"token_hash": "",
		"updated_at": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
