package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/repository"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

type employeeRequest struct {
	EID      string  `json:"eid" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Salary   float64 `json:"salary" binding:"min=0"`
	Role     string  `json:"role" binding:"required"`
	HireDate string  `json:"hire_date" binding:"required,dateformat"`
	Email    string  `json:"email" binding:"required,email"`
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

func (h *EmployeeHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.PUT("/:eid", h.update)
	router.DELETE("/:eid", h.delete)
}

func (h *EmployeeHandler) list(c *gin.Context) {
	employees, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee := req.toDomain()
	if err := h.repo.Create(c.Request.Context(), &employee); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) update(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee := req.toDomain()
	employee.EID = c.Param("eid")
	if err := h.repo.Update(c.Request.Context(), &employee); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("eid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("eid")})
}

func (r employeeRequest) toDomain() domain.Employee {
	return domain.Employee{
		EID:      r.EID,
		Name:     r.Name,
		Salary:   r.Salary,
		Role:     r.Role,
		HireDate: r.HireDate,
		Email:    r.Email,
	}
}
