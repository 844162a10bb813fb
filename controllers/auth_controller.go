package controllers

import (
	"net/http"
	"strings"

	"shivashray-backend/config"
	"shivashray-backend/middleware"
	"shivashray-backend/models"
	"shivashray-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=2"`
	Phone    string `json:"phone"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Email:          email,
		HashedPassword: string(hash),
		FullName:       strings.TrimSpace(payload.FullName),
		Phone:          strings.TrimSpace(payload.Phone),
		IsActive:       true,
		Role:           models.RoleGuest,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	var user models.User
	if err := config.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		utils.JSONDetail(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password)) != nil {
		utils.JSONDetail(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	pair, err := utils.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to generate tokens")
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh trades a valid refresh token for a fresh pair. The old refresh
// token keeps working until it expires; there is no server-side revocation
// list.
func Refresh(c *gin.Context) {
	var payload refreshPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	claims, err := utils.ParseToken(payload.RefreshToken)
	if err != nil || claims.TokenType != utils.TokenTypeRefresh {
		utils.JSONDetail(c, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var user models.User
	if err := config.DB.Where("id = ? AND is_active = ?", claims.UserID, true).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.JSONDetail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	pair, err := utils.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to generate tokens")
		return
	}
	c.JSON(http.StatusOK, pair)
}

func Me(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.JSONDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		utils.JSONDetail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
