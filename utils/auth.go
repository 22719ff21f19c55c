package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PoonjothiV/grocerywebsites/models"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// Claims represents the JWT claims the backend issues on login.
type Claims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// User builds the session identity from the claims.
func (c *Claims) User() (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Name: c.Name, Email: c.Email}, nil
}

// GenerateJWT generates a token for a user. The storefront itself does not
// issue tokens in production; this mirrors the backend's format for tests
// and local tooling.
func GenerateJWT(userID, name, email, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
