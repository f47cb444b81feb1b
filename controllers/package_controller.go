package controllers

import (
	"net/http"

	"event-backend/services"

	"github.com/gin-gonic/gin"
)

type PackageController struct {
	PackageSvc *services.PackageService
}

func NewPackageController(svc *services.PackageService) *PackageController {
	return &PackageController{PackageSvc: svc}
}

func (ctrl *PackageController) GetEventPackages(c *gin.Context) {
	packages, err := ctrl.PackageSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}
