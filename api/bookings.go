package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/repository"
	"github.com/rmoulin/skyflight/internal/service/bookings"
)

// BookingHandler covers the admin booking CRUD plus the passenger-facing
// my-bookings listing and the cancellation request.
type BookingHandler struct {
	service bookings.BookingUseCase
	repo    repository.BookingRepository
}

type bookingRequest struct {
	BID         string  `json:"bid" binding:"required"`
	PID         string  `json:"pid" binding:"required"`
	FlNo        string  `json:"flno" binding:"required"`
	BookingDate string  `json:"booking_date" binding:"required,dateformat"`
	SeatNumber  string  `json:"seat_number" binding:"required"`
	Class       string  `json:"class" binding:"required,oneof=Economy Business First"`
	Status      string  `json:"status" binding:"required,oneof=Pending Confirmed Cancelled"`
	PricePaid   float64 `json:"price_paid" binding:"min=0"`
}

func NewBookingHandler(service bookings.BookingUseCase, repo repository.BookingRepository) *BookingHandler {
	return &BookingHandler{service: service, repo: repo}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:bid", h.get)
	router.POST("", h.create)
	router.PUT("/:bid", h.update)
	router.DELETE("/:bid", h.delete)
	router.POST("/:bid/cancel", h.cancel)
}

// RegisterMyBookings mounts the passenger-facing listing outside the admin
// group.
func (h *BookingHandler) RegisterMyBookings(router *gin.RouterGroup) {
	router.GET("/my-bookings", h.myBookings)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) get(c *gin.Context) {
	booking, err := h.repo.GetByBID(c.Request.Context(), c.Param("bid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := req.toDomain()
	if err := h.repo.Create(c.Request.Context(), &booking); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) update(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := req.toDomain()
	booking.BID = c.Param("bid")
	if err := h.repo.Update(c.Request.Context(), &booking); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("bid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("bid")})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	booking, err := h.service.RequestCancellation(c.Request.Context(), c.Param("bid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) myBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	views, err := h.service.ListForEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (r bookingRequest) toDomain() domain.Booking {
	return domain.Booking{
		BID:         r.BID,
		PID:         r.PID,
		FlNo:        r.FlNo,
		BookingDate: r.BookingDate,
		SeatNumber:  r.SeatNumber,
		Class:       domain.CabinClass(r.Class),
		Status:      domain.BookingStatus(r.Status),
		PricePaid:   r.PricePaid,
	}
}
