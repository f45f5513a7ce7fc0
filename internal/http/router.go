// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vanrent/internal/http/handlers"
	"vanrent/internal/http/middleware"
	"vanrent/internal/modules/calendar"
	"vanrent/internal/modules/customer"
	"vanrent/internal/modules/dashboard"
	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/pricing"
	"vanrent/internal/modules/rental"
)

type RouterDeps struct {
	Fleet       *fleet.Service
	Customers   *customer.Service
	Rentals     *rental.Service
	Pricing     *pricing.Service
	Calendar    *calendar.Service
	Dashboard   *dashboard.Service
	BankAccount string
	Log         *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.Recovery(deps.Log))

	fleetHandler := handlers.NewFleetHandler(deps.Fleet, deps.Rentals)
	r.GET("/api/vehicles", fleetHandler.List)
	r.POST("/api/vehicles", fleetHandler.Create)
	r.PUT("/api/vehicles/:id", fleetHandler.Update)
	r.DELETE("/api/vehicles/:id", fleetHandler.Delete)
	r.GET("/api/vehicles/availability", fleetHandler.Availability)

	customerHandler := handlers.NewCustomerHandler(deps.Customers)
	r.GET("/api/customers", customerHandler.List)
	r.POST("/api/customers", customerHandler.Create)

	rentalHandler := handlers.NewRentalHandler(deps.Rentals, deps.Fleet, deps.Pricing, deps.BankAccount)
	r.GET("/api/rentals", rentalHandler.List)
	r.POST("/api/rentals", rentalHandler.Create)
	r.DELETE("/api/rentals/:id", rentalHandler.Delete)
	r.GET("/api/rentals/quote", rentalHandler.Quote)
	r.GET("/api/rentals/:id/payment", rentalHandler.Payment)

	calendarHandler := handlers.NewCalendarHandler(deps.Calendar)
	r.GET("/api/calendar/:year/:month", calendarHandler.Month)

	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)
	r.GET("/api/dashboard", dashboardHandler.Overview)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
