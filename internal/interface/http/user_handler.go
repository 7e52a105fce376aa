package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "user-registration-service/internal/application"
	"user-registration-service/internal/domain/entity"
	"user-registration-service/pkg/apperrors"
	"user-registration-service/pkg/response"
	"user-registration-service/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username    string `json:"username" binding:"required,min=3"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName" binding:"omitempty"`
	AvatarURL   string `json:"avatarUrl" binding:"omitempty"`

	// Reserved for the federated-identity flow; clients registering a
	// local account must not send the keys at all. Bound as pointers so
	// an explicit empty string is still detected as present.
	Provider   *string `json:"provider"`
	ProviderID *string `json:"providerId"`
}

// checkRegisterRequest covers the constraints gin's binding cannot express:
// minimum username length on the trimmed value (the raw value may carry
// surrounding whitespace) and rejection of reserved keys whenever they are
// present, empty or not.
func checkRegisterRequest(req *registerRequest) []validation.FieldError {
	var details []validation.FieldError
	if req.Provider != nil {
		details = append(details, validation.FieldError{"provider": "Provider must not be provided"})
	}
	if req.ProviderID != nil {
		details = append(details, validation.FieldError{"providerId": "ProviderId must not be provided"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Username)) < 3 {
		details = append(details, validation.FieldError{"username": "Username must be at least 3 characters long"})
	}
	return details
}

// federatedAccountRequest is the payload shape for accounts established via
// an external identity provider. No route is registered for it yet.
// TODO: wire this to the OAuth callback handler once provider flows land.
type federatedAccountRequest struct {
	Email       string `json:"email" binding:"omitempty,email"`
	Provider    string `json:"provider" binding:"required,oneof=google facebook github"`
	ProviderID  string `json:"providerId" binding:"required"`
	DisplayName string `json:"displayName" binding:"omitempty"`
	AvatarURL   string `json:"avatarUrl" binding:"omitempty,url"`

	Password string `json:"password" binding:"isdefault"`
	Username string `json:"username" binding:"isdefault"`
}

// Register handles POST /api/v1/users/register. Validation failures never
// reach the service; service failures are pushed onto the error chain for
// the centralized translator to shape.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation(validation.ToFieldErrors(err)))
		return
	}
	if details := checkRegisterRequest(&req); len(details) > 0 {
		_ = c.Error(apperrors.Validation(details))
		return
	}

	in := userapp.RegisterInput{
		Username:    validation.Sanitize(req.Username),
		Email:       strings.TrimSpace(req.Email),
		Password:    req.Password,
		DisplayName: validation.Sanitize(req.DisplayName),
		AvatarURL:   validation.Sanitize(req.AvatarURL),
	}

	u, err := h.Svc.Register(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, userapp.ErrUserExists) {
			_ = c.Error(apperrors.Conflict("User with this email or username already exists"))
			return
		}
		_ = c.Error(apperrors.Internal("Something went wrong while registering the user", err))
		return
	}

	resp := response.Success(c, http.StatusCreated, publicUser(u), "User registered successfully")
	c.JSON(resp.Status, resp)
}

// publicUser shapes the API representation; the password hash is never
// serialized.
func publicUser(u *entity.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"username":    u.Username,
		"email":       u.Email,
		"provider":    u.Provider,
		"displayName": u.DisplayName,
		"avatarUrl":   u.AvatarURL,
		"createdAt":   u.CreatedAt,
		"updatedAt":   u.UpdatedAt,
	}
}
