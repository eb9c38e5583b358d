package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/services"
	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
	draftService   services.DraftServiceInterface
	logger         *zap.Logger
}

func NewBookingController(
	bookingService services.BookingServiceInterface,
	draftService services.DraftServiceInterface,
	logger *zap.Logger) *BookingController {
	return &BookingController{
		bookingService: bookingService,
		draftService:   draftService,
		logger:         logger,
	}
}

// CreateBooking godoc
// @Summary Finalize a trip draft into a booking
// @Description Send either draftId of a wizard draft or the draft itself
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Draft to book"
// @Success 201 {object} trip_models.Booking
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	ownerID := middleware.OwnerID(c)

	var draft tm.TripDraft
	switch {
	case req.DraftID != "":
		session, err := bc.draftService.GetDraft(ctx, ownerID, req.DraftID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		draft = session.Draft
	case req.Draft != nil:
		draft = *req.Draft
	default:
		utils.RespondError(c, http.StatusBadRequest, "Either draftId or draft is required")
		return
	}

	booking, err := bc.bookingService.CreateBooking(ctx, ownerID, draft)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if req.DraftID != "" {
		if err := bc.draftService.DiscardDraft(ctx, ownerID, req.DraftID); err != nil {
			bc.logger.Debug("draft already gone", zap.String("draft_id", req.DraftID), zap.Error(err))
		}
	}

	utils.RespondCreated(c, booking, "Booking created successfully")
}

// ListBookings godoc
// @Summary List the caller's bookings
// @Tags Booking
// @Produce json
// @Param tab query string false "upcoming, ongoing, completed or cancelled"
// @Success 200 {array} trip_models.Booking
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (bc *BookingController) ListBookings(c *gin.Context) {
	bookings, err := bc.bookingService.ListBookings(c.Request.Context(), middleware.OwnerID(c), c.Query("tab"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// GetBooking godoc
// @Summary Get one of the caller's bookings
// @Tags Booking
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} trip_models.Booking
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [get]
func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, err := bc.bookingService.GetBooking(c.Request.Context(), middleware.OwnerID(c), c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// CancelBooking godoc
// @Summary Cancel a confirmed booking
// @Tags Booking
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} trip_models.Booking
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/cancel [post]
func (bc *BookingController) CancelBooking(c *gin.Context) {
	booking, err := bc.bookingService.CancelBooking(c.Request.Context(), middleware.OwnerID(c), c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking cancelled successfully")
}

// Reconcile godoc
// @Summary Re-index the caller's stored but unlisted bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response_models.ReconcileResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/reconcile [post]
func (bc *BookingController) Reconcile(c *gin.Context) {
	added, err := bc.bookingService.Reconcile(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.ReconcileResponse{Added: added}, "Bookings reconciled successfully")
}
