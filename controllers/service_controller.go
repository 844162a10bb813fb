package controllers

import (
	"net/http"

	"shivashray-backend/config"
	"shivashray-backend/models"
	"shivashray-backend/utils"

	"github.com/gin-gonic/gin"
)

func GetServices(c *gin.Context) {
	var list []models.HotelService
	config.DB.Where("is_active = ?", true).Find(&list)
	c.JSON(http.StatusOK, list)
}

func GetService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var svc models.HotelService
	if err := config.DB.Where("id = ? AND is_active = ?", id, true).First(&svc).Error; err != nil {
		utils.JSONDetail(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}
