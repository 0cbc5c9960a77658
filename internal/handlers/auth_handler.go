package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/medibook/medibook-api/internal/models"
	"github.com/medibook/medibook-api/internal/utils"
)

type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	SpecialtyID string `json:"specialtyId"`
}

// Register creates a user account. Registering as a doctor also seeds
// the doctor record in its initial state: credentials pending, not yet
// approved for patient-facing visibility. Admin accounts cannot be
// created through this endpoint.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RolePatient
	}
	if role != models.RolePatient && role != models.RoleDoctor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be patient or doctor"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
		Phone:    req.Phone,
	}

	if err := h.Users.CreateUser(c.Request.Context(), &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		h.Log.Error("register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if role == models.RoleDoctor {
		doctor := models.Doctor{
			ID:               primitive.NewObjectID(),
			UserID:           user.ID,
			FullName:         user.FullName,
			Email:            user.Email,
			Phone:            user.Phone,
			SpecialtyID:      req.SpecialtyID,
			CredentialStatus: models.CredentialPending,
			Approved:         false,
		}
		if err := h.Doctors.CreateDoctor(c.Request.Context(), &doctor); err != nil {
			h.Log.Error("create doctor profile", zap.Error(err), zap.String("userId", user.ID.Hex()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor profile"})
			return
		}
	}

	c.JSON(http.StatusCreated, user)
}

// Login checks credentials and issues a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		h.Log.Error("generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
