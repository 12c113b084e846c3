package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/repository"
)

type PassengerHandler struct {
	repo repository.PassengerRepository
}

type passengerRequest struct {
	PID            string `json:"pid" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	PassportNumber string `json:"passport_number" binding:"required"`
	Nationality    string `json:"nationality" binding:"required"`
	DateOfBirth    string `json:"date_of_birth" binding:"required,dateformat"`
}

func NewPassengerHandler(repo repository.PassengerRepository) *PassengerHandler {
	return &PassengerHandler{repo: repo}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:pid", h.get)
	router.POST("", h.create)
	router.PUT("/:pid", h.update)
	router.DELETE("/:pid", h.delete)
}

func (h *PassengerHandler) list(c *gin.Context) {
	passengers, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func (h *PassengerHandler) get(c *gin.Context) {
	passenger, err := h.repo.GetByPID(c.Request.Context(), c.Param("pid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger := req.toDomain()
	if err := h.repo.Create(c.Request.Context(), &passenger); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

func (h *PassengerHandler) update(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger := req.toDomain()
	passenger.PID = c.Param("pid")
	if err := h.repo.Update(c.Request.Context(), &passenger); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("pid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("pid")})
}

func (r passengerRequest) toDomain() domain.Passenger {
	return domain.Passenger{
		PID:            r.PID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		PassportNumber: r.PassportNumber,
		Nationality:    r.Nationality,
		DateOfBirth:    r.DateOfBirth,
	}
}
