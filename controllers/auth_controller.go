package controllers

import (
	"log"
	"net/http"

	"event-backend/middleware"
	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// Login verifies admin credentials and records the identity in the session.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "invalid payload")
		return
	}

	admin, err := ctrl.AuthSvc.Authenticate(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserID, admin.ID)
	session.Set(middleware.SessionUsername, admin.Username)
	session.Set(middleware.SessionRole, admin.Role)
	if err := session.Save(); err != nil {
		log.Printf("❌ failed to save session: %v", err)
		utils.JSONMessage(c, http.StatusInternalServerError, "failed to establish session")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Login successful")
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Printf("❌ failed to clear session: %v", err)
		utils.JSONMessage(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Logged out successfully")
}
