package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/repository"
	"github.com/rmoulin/skyflight/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
	repo    repository.FlightRepository
}

type flightRequest struct {
	FlNo           string  `json:"flno" binding:"required"`
	Origin         string  `json:"origin" binding:"required"`
	Destination    string  `json:"destination" binding:"required"`
	Distance       int     `json:"distance" binding:"min=0"`
	DepartureDate  string  `json:"departure_date" binding:"required,dateformat"`
	DepartureTime  string  `json:"departure_time" binding:"required"`
	ArrivalTime    string  `json:"arrival_time" binding:"required"`
	Price          float64 `json:"price" binding:"min=0"`
	AircraftID     string  `json:"aid"`
	AvailableSeats int     `json:"available_seats" binding:"min=0"`
}

func NewFlightHandler(service flights.FlightUseCase, repo repository.FlightRepository) *FlightHandler {
	return &FlightHandler{service: service, repo: repo}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:flno", h.get)
	router.POST("", h.create)
	router.PUT("/:flno", h.update)
	router.DELETE("/:flno", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByFlNo(c.Request.Context(), c.Param("flno"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight := req.toDomain()
	if err := h.repo.Create(c.Request.Context(), &flight); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight := req.toDomain()
	flight.FlNo = c.Param("flno")
	if err := h.repo.Update(c.Request.Context(), &flight); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("flno")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("flno")})
}

func (r flightRequest) toDomain() domain.Flight {
	return domain.Flight{
		FlNo:           r.FlNo,
		Origin:         r.Origin,
		Destination:    r.Destination,
		Distance:       r.Distance,
		DepartureDate:  r.DepartureDate,
		DepartureTime:  r.DepartureTime,
		ArrivalTime:    r.ArrivalTime,
		Price:          r.Price,
		AircraftID:     r.AircraftID,
		AvailableSeats: r.AvailableSeats,
	}
}
