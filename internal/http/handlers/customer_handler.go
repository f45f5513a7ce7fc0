// README: Customer handlers for renter records.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vanrent/internal/modules/customer"
)

type CustomerHandler struct {
	customers *customer.Service
}

func NewCustomerHandler(svc *customer.Service) *CustomerHandler {
	return &CustomerHandler{customers: svc}
}

type customerReq struct {
	FirstName            string  `json:"first_name" binding:"required"`
	LastName             string  `json:"last_name" binding:"required"`
	Email                string  `json:"email" binding:"required,email"`
	Phone                *string `json:"phone"`
	IDCardNumber         *string `json:"id_card_number"`
	DriversLicenseNumber *string `json:"drivers_license_number"`
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, customers)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	created, err := h.customers.Create(c.Request.Context(), customer.CustomerInput{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		IDCardNumber:         req.IDCardNumber,
		DriversLicenseNumber: req.DriversLicenseNumber,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, created)
}
