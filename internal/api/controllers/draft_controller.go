package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/request_models"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/services"
	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"
)

type DraftController struct {
	draftService services.DraftServiceInterface
}

func NewDraftController(draftService services.DraftServiceInterface) *DraftController {
	return &DraftController{
		draftService: draftService,
	}
}

// CreateDraft godoc
// @Summary Start a trip wizard
// @Tags Draft
// @Produce json
// @Success 201 {object} trip_models.DraftSession
// @Security BearerAuth
// @Router /drafts [post]
func (dc *DraftController) CreateDraft(c *gin.Context) {
	session, err := dc.draftService.CreateDraft(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, session, "Draft created successfully")
}

// GetDraft godoc
// @Summary Get a trip wizard draft
// @Tags Draft
// @Produce json
// @Param draftId path string true "Draft ID"
// @Success 200 {object} trip_models.DraftSession
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /drafts/{draftId} [get]
func (dc *DraftController) GetDraft(c *gin.Context) {
	session, err := dc.draftService.GetDraft(c.Request.Context(), middleware.OwnerID(c), c.Param("draftId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Draft fetched successfully")
}

// ApplyStep godoc
// @Summary Apply one wizard step to a draft
// @Description The draft is only updated when the step passes validation
// @Tags Draft
// @Accept json
// @Produce json
// @Param draftId path string true "Draft ID"
// @Param step path int true "Step (1-4)"
// @Param request body trip_models.StepInput true "Step fields"
// @Success 200 {object} trip_models.DraftSession
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /drafts/{draftId}/steps/{step} [put]
func (dc *DraftController) ApplyStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidStep)
		return
	}

	var in tm.StepInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := dc.draftService.ApplyStep(c.Request.Context(), middleware.OwnerID(c), c.Param("draftId"), tm.Step(step), in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Step applied successfully")
}

// EditDay godoc
// @Summary Edit one day of the draft itinerary
// @Tags Draft
// @Accept json
// @Produce json
// @Param draftId path string true "Draft ID"
// @Param day path int true "Day number"
// @Param request body request_models.EditDayRequest true "Day fields"
// @Success 200 {object} trip_models.DraftSession
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /drafts/{draftId}/itinerary/days/{day} [put]
func (dc *DraftController) EditDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidDay)
		return
	}

	var req request_models.EditDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := dc.draftService.EditDay(c.Request.Context(), middleware.OwnerID(c), c.Param("draftId"), day, tm.DayPlan{
		Title:         req.Title,
		Activities:    req.Activities,
		Accommodation: req.Accommodation,
		Meals:         req.Meals,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Day updated successfully")
}
