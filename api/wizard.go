package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/service/wizard"
)

type WizardHandler struct {
	service wizard.WizardUseCase
}

type searchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date" binding:"omitempty,dateformat"`
}

type selectFlightRequest struct {
	FlNo string `json:"flno" binding:"required"`
}

type passengerInfoRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	PassportNumber string `json:"passport_number" binding:"required"`
	Nationality    string `json:"nationality" binding:"required"`
	DateOfBirth    string `json:"date_of_birth" binding:"required,dateformat"`
	Class          string `json:"class" binding:"required,oneof=Economy Business First"`
}

func NewWizardHandler(service wizard.WizardUseCase) *WizardHandler {
	return &WizardHandler{service: service}
}

func (h *WizardHandler) Register(router *gin.RouterGroup) {
	router.POST("/sessions", h.start)
	router.POST("/sessions/:sid/search", h.search)
	router.POST("/sessions/:sid/flight", h.selectFlight)
	router.POST("/sessions/:sid/back", h.back)
	router.POST("/sessions/:sid/passenger", h.submitPassenger)
}

func (h *WizardHandler) start(c *gin.Context) {
	session, err := h.service.StartSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *WizardHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.service.Search(c.Request.Context(), c.Param("sid"), wizard.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": results, "count": len(results)})
}

func (h *WizardHandler) selectFlight(c *gin.Context) {
	var req selectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.SelectFlight(c.Request.Context(), c.Param("sid"), req.FlNo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) back(c *gin.Context) {
	session, err := h.service.Back(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) submitPassenger(c *gin.Context) {
	var req passengerInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.service.SubmitPassengerInfo(c.Request.Context(), c.Param("sid"), wizard.PassengerInfo{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		PassportNumber: req.PassportNumber,
		Nationality:    req.Nationality,
		DateOfBirth:    req.DateOfBirth,
	}, domain.CabinClass(req.Class))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}
