// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"vanrent/internal/config"
	httptransport "vanrent/internal/http"
	"vanrent/internal/infra"
	"vanrent/internal/logger"
	"vanrent/internal/modules/calendar"
	"vanrent/internal/modules/customer"
	"vanrent/internal/modules/dashboard"
	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/pricing"
	"vanrent/internal/modules/rental"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	fleetStore := fleet.NewStore(dbPool, redisClient, time.Duration(cfg.Cache.FleetTTLSeconds)*time.Second)
	fleetSvc := fleet.NewService(fleetStore)

	customerStore := customer.NewStore(dbPool)
	customerSvc := customer.NewService(customerStore)

	pricingStore := pricing.NewStore(dbPool)
	pricingSvc := pricing.NewService(pricingStore)

	rentalStore := rental.NewStore(dbPool)
	rentalSvc := rental.NewService(rentalStore, pricingSvc, time.Now)

	calendarSvc := calendar.NewService(fleetSvc, rentalSvc, time.Now)
	dashboardSvc := dashboard.NewService(fleetSvc, customerSvc, rentalSvc, time.Now)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Fleet:       fleetSvc,
		Customers:   customerSvc,
		Rentals:     rentalSvc,
		Pricing:     pricingSvc,
		Calendar:    calendarSvc,
		Dashboard:   dashboardSvc,
		BankAccount: cfg.Bank.Account,
		Log:         log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server", zap.Error(err))
	}
}
