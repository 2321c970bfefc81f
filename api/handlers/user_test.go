package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/medcare/medcare-api/databases"
	"github.com/medcare/medcare-api/databases/mocks"
	"github.com/medcare/medcare-api/models"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		insertErr      error
		expectInsert   bool
		expectedStatus int
	}{
		{
			name:           "successful registration",
			body:           `{"email":"jane@example.com","password":"hunter22","firstName":"Jane","lastName":"Doe","phone":"+15550100"}`,
			expectInsert:   true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate email",
			body:           `{"email":"jane@example.com","password":"hunter22"}`,
			insertErr:      databases.ErrDuplicateEmail,
			expectInsert:   true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email",
			body:           `{"password":"hunter22"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			body:           `{"email":"jane@example.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := mocks.NewUserDatabase(t)
			if tt.expectInsert {
				mockDB.On("Insert", mock.Anything, mock.AnythingOfType("*models.User")).Return(tt.insertErr)
			}

			u := User{DB: mockDB}
			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			u.RegisterHandler(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusCreated {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "User created successfully", resp["message"])
				user := resp["user"].(map[string]interface{})
				assert.Equal(t, "jane@example.com", user["email"])
				assert.NotEmpty(t, user["id"])
				// the password hash never appears in the response
				assert.NotContains(t, rr.Body.String(), "hunter22")
				assert.NotContains(t, rr.Body.String(), "password")
			}
		})
	}
}

func TestRegisterHandlerHashesPassword(t *testing.T) {
	mockDB := mocks.NewUserDatabase(t)
	var inserted *models.User
	mockDB.On("Insert", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*models.User)
	}).Return(nil)

	u := User{DB: mockDB}
	body := `{"email":"jane@example.com","password":"hunter22"}`
	rr := httptest.NewRecorder()
	u.RegisterHandler(rr, httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEqual(t, "hunter22", inserted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.Password), []byte("hunter22")))
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{
		ID:        "u1",
		Email:     "jane@example.com",
		Password:  string(hash),
		FirstName: "Jane",
	}

	tests := []struct {
		name           string
		body           string
		dbUser         *models.User
		dbErr          error
		expectFind     bool
		expectedStatus int
	}{
		{
			name:           "successful login",
			body:           `{"email":"jane@example.com","password":"hunter22"}`,
			dbUser:         stored,
			expectFind:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           `{"email":"jane@example.com","password":"letmein"}`,
			dbUser:         stored,
			expectFind:     true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			body:           `{"email":"ghost@example.com","password":"hunter22"}`,
			dbErr:          databases.ErrNotFound,
			expectFind:     true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := mocks.NewUserDatabase(t)
			if tt.expectFind {
				mockDB.On("FindByEmail", mock.Anything, mock.AnythingOfType("string")).Return(tt.dbUser, tt.dbErr)
			}

			u := User{DB: mockDB}
			rr := httptest.NewRecorder()
			u.LoginHandler(rr, httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Login successful", resp["message"])
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), "Invalid credentials")
			}
		})
	}
}

func TestLoginHandlerIssuesSessionToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockDB := mocks.NewUserDatabase(t)
	mockDB.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		ID:       "u1",
		Email:    "jane@example.com",
		Password: string(hash),
	}, nil)

	u := User{DB: mockDB, JWTSecret: "test-secret"}
	body := `{"email":"jane@example.com","password":"hunter22"}`
	rr := httptest.NewRecorder()
	u.LoginHandler(rr, httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}
