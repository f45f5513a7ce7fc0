// README: Vehicle handlers for fleet CRUD and availability lookup.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/pricing"
	"vanrent/internal/modules/rental"
	"vanrent/internal/types"
)

type FleetHandler struct {
	fleet   *fleet.Service
	rentals *rental.Service
}

func NewFleetHandler(fleetSvc *fleet.Service, rentalSvc *rental.Service) *FleetHandler {
	return &FleetHandler{fleet: fleetSvc, rentals: rentalSvc}
}

type vehicleReq struct {
	Brand           string           `json:"brand" binding:"required"`
	LicensePlate    string           `json:"license_plate" binding:"required"`
	VIN             string           `json:"vin" binding:"required"`
	Year            int              `json:"year" binding:"required"`
	LastServiceDate *time.Time       `json:"last_service_date"`
	LastServiceCost *types.Money     `json:"last_service_cost"`
	STKDate         *time.Time       `json:"stk_date"`
	InsuranceInfo   *string          `json:"insurance_info"`
	VignetteUntil   *time.Time       `json:"vignette_until"`
	Pricing         pricing.RateCard `json:"pricing"`
}

func (r vehicleReq) input() fleet.VehicleInput {
	return fleet.VehicleInput{
		Brand:           fleet.Brand(r.Brand),
		LicensePlate:    r.LicensePlate,
		VIN:             r.VIN,
		Year:            r.Year,
		LastServiceDate: r.LastServiceDate,
		LastServiceCost: r.LastServiceCost,
		STKDate:         r.STKDate,
		InsuranceInfo:   r.InsuranceInfo,
		VignetteUntil:   r.VignetteUntil,
		Pricing:         r.Pricing,
	}
}

func (h *FleetHandler) List(c *gin.Context) {
	vehicles, err := h.fleet.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, vehicles)
}

func (h *FleetHandler) Create(c *gin.Context) {
	var req vehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	v, err := h.fleet.Create(c.Request.Context(), req.input())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, v)
}

func (h *FleetHandler) Update(c *gin.Context) {
	var req vehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	v, err := h.fleet.Update(c.Request.Context(), types.ID(c.Param("id")), req.input())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, v)
}

func (h *FleetHandler) Delete(c *gin.Context) {
	if err := h.fleet.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type vehicleAvailability struct {
	Vehicle   fleet.Vehicle `json:"vehicle"`
	Available bool          `json:"available"`
}

// Availability marks each vehicle available or occupied for the requested
// window, feeding the picker's disabled options.
func (h *FleetHandler) Availability(c *gin.Context) {
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

	vehicles, err := h.fleet.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	occupied, err := h.rentals.Availability(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// An inverted window disables every option, matching the fail-closed
	// availability rule.
	validWindow := start.Before(end)
	out := make([]vehicleAvailability, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, vehicleAvailability{Vehicle: v, Available: validWindow && !occupied[v.ID]})
	}
	writeJSON(c, http.StatusOK, out)
}
