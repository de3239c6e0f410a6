package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/agrocare/agrocare-backend/internal/config"
	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotApproved        = errors.New("user not approved yet")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password must not exceed 72 bytes")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if req.FullName == "" || req.Email == "" || len(req.Password) < 8 {
		return nil, errors.New("full name, email and a password of at least 8 characters are required")
	}
	// bcrypt errors on inputs past 72 bytes
	if len(req.Password) > 72 {
		return nil, ErrPasswordTooLong
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if role == models.RoleAdmin {
		return nil, errors.New("admin accounts cannot be self-registered")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Login accepts an email or a phone number as identifier and returns the
// user together with a signed access token.
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ? OR phone = ?", req.Identifier, req.Identifier).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsApproved {
		return nil, "", ErrNotApproved
	}

	token, err := s.GenerateAccessToken(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// GenerateAccessToken signs an HS256 token carrying the user id as the
// `id` claim, expiring after the configured JWT expiry.
func (s *AuthService) GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":  user.ID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
