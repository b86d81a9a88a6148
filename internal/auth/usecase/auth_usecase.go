package usecase

import (
	"time"

	authdomain "besteller-backend/internal/auth/domain"
	authdto "besteller-backend/internal/auth/dto"
	"besteller-backend/internal/auth/repository"
	"besteller-backend/pkg/apperr"
	"besteller-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// AuthUsecase defines the interface for admin authentication
type AuthUsecase interface {
	// Login verifies credentials and returns an access token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	// CreateUser creates an admin account with a hashed password
	CreateUser(email, name, password string) (*authdomain.User, error)
	// ValidateToken resolves an access token to its user
	ValidateToken(tokenString string) (*authdomain.User, error)
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.Validation("invalid email or password")
	}

	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

func (u *authUsecase) CreateUser(email, name, password string) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hashedPassword, err := repository.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    email,
		Name:     name,
		Password: hashedPassword,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, apperr.Validation("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Validation("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperr.Validation("invalid token claims")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}
