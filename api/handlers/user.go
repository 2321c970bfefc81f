package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/medcare/medcare-api/config"
	"github.com/medcare/medcare-api/databases"
	"github.com/medcare/medcare-api/models"
)

// User exported for testing purposes
type User struct {
	DB        databases.UserDatabase
	JWTSecret string
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler creates a user. Passwords are stored as bcrypt hashes,
// never as plaintext.
func (u User) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	if req.Email == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "Email and password are required"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := u.DB.Insert(r.Context(), user); err != nil {
		if errors.Is(err, databases.ErrDuplicateEmail) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.MessageResponse{Message: "User already exists"})
			return
		}
		config.ErrorStatus("failed to insert user", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("user registered", "userId", user.ID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "User created successfully",
		"user":    user.Response(),
	})
}

// LoginHandler checks credentials and returns the user. When a JWT secret
// is configured a signed session token is included for the client to keep.
func (u User) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	user, err := u.DB.FindByEmail(r.Context(), req.Email)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "Invalid credentials"})
		return
	}

	response := map[string]interface{}{
		"message": "Login successful",
		"user":    user.Response(),
	}

	if u.JWTSecret != "" {
		token, err := u.signSessionToken(user)
		if err != nil {
			config.ErrorStatus("failed to sign session token", http.StatusInternalServerError, w, err)
			return
		}
		response["token"] = token
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (u User) signSessionToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.JWTSecret))
}
