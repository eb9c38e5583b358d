package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
}

func NewPackageController(packageService services.PackageServiceInterface) *PackageController {
	return &PackageController{
		packageService: packageService,
	}
}

// ListPackagesHandler godoc
// @Summary List curated travel packages
// @Tags Package
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} trip_models.TravelPackage
// @Router /packages [get]
func (pc *PackageController) ListPackagesHandler(c *gin.Context) {
	// 1. Parse query parameters
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	// 2. Call service layer
	packages, err := pc.packageService.GetAllPackages(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// 3. Respond with success
	utils.RespondSuccess(c, packages, "Fetched packages successfully")
}
