// README: Rental handlers: CRUD, price quote, payment payload.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vanrent/internal/modules/contract"
	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/pricing"
	"vanrent/internal/modules/rental"
	"vanrent/internal/types"
)

type RentalHandler struct {
	rentals     *rental.Service
	fleet       *fleet.Service
	pricing     *pricing.Service
	bankAccount string
}

func NewRentalHandler(rentalSvc *rental.Service, fleetSvc *fleet.Service, pricingSvc *pricing.Service, bankAccount string) *RentalHandler {
	return &RentalHandler{rentals: rentalSvc, fleet: fleetSvc, pricing: pricingSvc, bankAccount: bankAccount}
}

type createRentalReq struct {
	VehicleID  string       `json:"vehicle_id" binding:"required"`
	CustomerID string       `json:"customer_id" binding:"required"`
	StartDate  time.Time    `json:"start_date" binding:"required"`
	EndDate    time.Time    `json:"end_date" binding:"required"`
	TotalPrice *types.Money `json:"total_price"`
}

func (h *RentalHandler) List(c *gin.Context) {
	rentals, err := h.rentals.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rentals)
}

func (h *RentalHandler) Create(c *gin.Context) {
	var req createRentalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	r, err := h.rentals.Create(c.Request.Context(), rental.CreateCommand{
		VehicleID:     types.ID(req.VehicleID),
		CustomerID:    types.ID(req.CustomerID),
		StartAt:       req.StartDate,
		EndAt:         req.EndDate,
		PriceOverride: req.TotalPrice,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, r)
}

func (h *RentalHandler) Delete(c *gin.Context) {
	if err := h.rentals.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type quoteResp struct {
	VehicleID  types.ID    `json:"vehicle_id"`
	Hours      float64     `json:"hours"`
	TotalPrice types.Money `json:"total_price"`
}

// Quote proposes a price for a window from the vehicle's rate card. The
// caller may still override the total when committing.
func (h *RentalHandler) Quote(c *gin.Context) {
	vehicleID := c.Query("vehicle_id")
	if vehicleID == "" {
		writeError(c, http.StatusBadRequest, "missing vehicle_id")
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid start")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid end")
		return
	}

	d := end.Sub(start)
	price, err := h.pricing.Estimate(c.Request.Context(), types.ID(vehicleID), d)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quoteResp{
		VehicleID:  types.ID(vehicleID),
		Hours:      d.Hours(),
		TotalPrice: price,
	})
}

type paymentResp struct {
	contract.PaymentPayload
	SPAYD string `json:"spayd"`
}

// Payment derives the payment-code fields for a committed rental.
func (h *RentalHandler) Payment(c *gin.Context) {
	r, err := h.rentals.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	v, err := h.fleet.Get(c.Request.Context(), r.VehicleID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	payload := contract.BuildPaymentPayload(r, v, h.bankAccount)
	writeJSON(c, http.StatusOK, paymentResp{PaymentPayload: payload, SPAYD: payload.SPAYD()})
}
