package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/startovate/server/internal/api/middleware"
	"github.com/startovate/server/internal/config"
	"github.com/startovate/server/internal/models"
	"github.com/startovate/server/internal/repositories"
	"github.com/startovate/server/internal/utils"
)

// POST /auth/sign-up
func RegisterUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	type Input struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input Input

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	err := repositories.Users.SignUp(input.Name, input.Username, input.Email, input.Password)
	switch {
	case errors.Is(err, models.ErrMissingField):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please fill out all fields",
		})
		return
	case errors.Is(err, models.ErrDuplicateUsername):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Username is already taken",
		})
		return
	case err != nil:
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to save account",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Account created for " + input.Name,
	})
}

// JWT Claims struct
type Claims struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// POST /auth/login
func LoginUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if input.Username == "" || input.Password == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	user, err := repositories.Users.Login(input.Username, input.Password)
	if err != nil {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Incorrect username or password",
		})
		return
	}

	// Load JWT secret
	secret := config.Envs.JWTSecret
	if secret == "" {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "No config found for JWT",
		})
		return
	}

	// Build JWT claims
	expiration := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Username:    strings.ToLower(input.Username),
		DisplayName: user.Name,
		Email:       user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Sign token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to create token",
		})
		return
	}

	// Cookie max-age
	maxAge := int(expiration.Unix() - time.Now().Unix())

	// Check if we're in production
	isProd := config.Envs.Environment == "production"

	// SameSite cookie policy
	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	// Set cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful",
		Data: map[string]string{
			"username":    strings.ToLower(input.Username),
			"displayName": user.Name,
			"email":       user.Email,
		},
	})
}

// POST /api/v1/auth/logout
func Logout(w http.ResponseWriter, r *http.Request) {
	// Drop the transient session state before clearing the cookie
	if username := usernameFromContext(r); username != "" {
		Sessions.Reset(username)
	}

	isProd := config.Envs.Environment == "production"

	// Delete the token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "", // empty value
		Path:     "/",
		MaxAge:   -1, // maxAge < 0 deletes the cookie
		Secure:   isProd,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged out successfully",
	})
}

// GET /api/v1/session
func GetSession(w http.ResponseWriter, r *http.Request) {
	username := usernameFromContext(r)
	_, hasIdea := Sessions.CurrentIdea(username)

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Session active",
		Data: map[string]any{
			"username":       username,
			"displayName":    displayNameFromContext(r),
			"email":          emailFromContext(r),
			"currentPage":    Sessions.Page(username),
			"hasCurrentIdea": hasIdea,
			"lastTranscript": Sessions.Transcript(username),
		},
	})
}

var pages = []string{"Startup Generator", "Idea Pitch Deck", "Startup Gallery"}

// PATCH /api/v1/session/page
func SetSessionPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var input struct {
		Page string `json:"page"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || !slices.Contains(pages, input.Page) {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Unknown page",
		})
		return
	}

	Sessions.SetPage(usernameFromContext(r), input.Page)

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Now on " + input.Page,
	})
}

func usernameFromContext(r *http.Request) string {
	username, _ := r.Context().Value(middleware.UsernameKey).(string)
	return username
}

func displayNameFromContext(r *http.Request) string {
	name, _ := r.Context().Value(middleware.DisplayNameKey).(string)
	return name
}

func emailFromContext(r *http.Request) string {
	email, _ := r.Context().Value(middleware.EmailKey).(string)
	return email
}
