package services

import (
	"errors"
	"fmt"
	"strings"

	"event-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate verifies an admin's username and password. Unknown user and
// wrong password both return ErrInvalidCredentials so the response does not
// reveal which one failed.
func (s *AuthService) Authenticate(username, password string) (models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Admin{}, ErrInvalidCredentials
	}

	var admin models.Admin
	err := s.DB.Where("username = ? AND role = ?", username, "admin").First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Admin{}, ErrInvalidCredentials
		}
		return models.Admin{}, fmt.Errorf("failed to look up admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return models.Admin{}, ErrInvalidCredentials
	}
	return admin, nil
}
