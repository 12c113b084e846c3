package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/repository"
)

type AircraftHandler struct {
	repo repository.AircraftRepository
}

type aircraftRequest struct {
	AID              string `json:"aid" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Range            int    `json:"range_km" binding:"min=0"`
	Capacity         int    `json:"capacity" binding:"min=0"`
	Manufacturer     string `json:"manufacturer"`
	YearManufactured int    `json:"year_manufactured"`
}

func NewAircraftHandler(repo repository.AircraftRepository) *AircraftHandler {
	return &AircraftHandler{repo: repo}
}

func (h *AircraftHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.PUT("/:aid", h.update)
	router.DELETE("/:aid", h.delete)
}

func (h *AircraftHandler) list(c *gin.Context) {
	fleet, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fleet)
}

func (h *AircraftHandler) create(c *gin.Context) {
	var req aircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aircraft := req.toDomain()
	if err := h.repo.Create(c.Request.Context(), &aircraft); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, aircraft)
}

func (h *AircraftHandler) update(c *gin.Context) {
	var req aircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aircraft := req.toDomain()
	aircraft.AID = c.Param("aid")
	if err := h.repo.Update(c.Request.Context(), &aircraft); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

func (h *AircraftHandler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("aid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("aid")})
}

func (r aircraftRequest) toDomain() domain.Aircraft {
	return domain.Aircraft{
		AID:              r.AID,
		Name:             r.Name,
		Range:            r.Range,
		Capacity:         r.Capacity,
		Manufacturer:     r.Manufacturer,
		YearManufactured: r.YearManufactured,
	}
}
