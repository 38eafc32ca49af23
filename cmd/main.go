package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	cancelBookingHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/get_available_slots"
	getBarberHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/get_barber"
	getBarberBookingsHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/get_barber_bookings"
	getBookingHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/get_booking"
	getStatisticsHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/get_statistics"
	getUserBookingsHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/get_user_bookings"
	markNoShowHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/mark_no_show"
	searchBarbersHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/search_barbers"
	updateAvailabilityHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/update_availability"
	updateStatusHandler "github.com/cortate-cl/CTC-BarberService/internal/api/handlers/update_status"
	"github.com/cortate-cl/CTC-BarberService/internal/api/middleware"
	"github.com/cortate-cl/CTC-BarberService/internal/config"
	placesClient "github.com/cortate-cl/CTC-BarberService/internal/integrations/places"
	registryClient "github.com/cortate-cl/CTC-BarberService/internal/integrations/registry"
	barbersService "github.com/cortate-cl/CTC-BarberService/internal/service/barbers"
	bookingsService "github.com/cortate-cl/CTC-BarberService/internal/service/bookings"
	createBookingUC "github.com/cortate-cl/CTC-BarberService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/cortate-cl/CTC-BarberService/internal/usecase/get_available_slots"
	searchBarbersUC "github.com/cortate-cl/CTC-BarberService/internal/usecase/search_barbers"
	"github.com/cortate-cl/CTC-BarberService/pkg/cache"
	"github.com/cortate-cl/CTC-BarberService/pkg/logger"
	"github.com/cortate-cl/CTC-BarberService/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CTC-BarberService...")
	log.Info("Configuration loaded from config.toml")

	// Metrics: the no-op collector keeps the wiring identical when disabled.
	var (
		metricsCollector *metrics.Metrics
		cacheMetrics     interface {
			IncCacheHit(kind string)
			IncCacheMiss(kind string)
		} = metrics.Noop{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		cacheMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Caches: one instance per kind so TTLs stay independent.
	directoryCache := cache.New(time.Duration(cfg.Cache.DirectoryTTL) * time.Second)
	barberCache := cache.New(time.Duration(cfg.Cache.BarberTTL) * time.Second)
	bookingCache := cache.New(time.Duration(cfg.Cache.BookingsTTL) * time.Second)

	// Integration clients
	registry := registryClient.NewClient(
		cfg.Registry.URL,
		time.Duration(cfg.Registry.Timeout)*time.Second,
		log,
	)
	places := placesClient.NewClient(
		cfg.Places.URL,
		time.Duration(cfg.Places.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Registry=%s timeout=%ds, Places=%s timeout=%ds)",
		cfg.Registry.URL, cfg.Registry.Timeout, cfg.Places.URL, cfg.Places.Timeout)

	// Services
	bookingSvc := bookingsService.NewService(
		registry,
		bookingCache,
		cacheMetrics,
		&bookingsService.RealTimeProvider{},
		log,
	)
	barberSvc := barbersService.NewService(
		registry,
		barberCache,
		cacheMetrics,
		log,
	)

	// Use cases
	searchBarbersUseCase := searchBarbersUC.NewUseCase(
		registry,
		places,
		directoryCache,
		cacheMetrics,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		registry,
		&getAvailableSlotsUC.RealTimeProvider{},
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		registry,
		bookingCache,
		&createBookingUC.RealTimeProvider{},
		log,
	)

	// Handlers
	searchBarbers := searchBarbersHandler.NewHandler(searchBarbersUseCase, log)
	getBarber := getBarberHandler.NewHandler(barberSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBarberBookings := getBarberBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	markNoShow := markNoShowHandler.NewHandler(bookingSvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(barberSvc, log)
	updateStatus := updateStatusHandler.NewHandler(barberSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(barberSvc, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: directory browsing needs no account.
	api.HandleFunc("/barbers/search", searchBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Bookings
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/me", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/barber/me", getBarberBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/no-show", markNoShow.Handle).Methods(http.MethodPatch)

	// Barber dashboard
	protected.HandleFunc("/barbers/me/availability", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/me/status", updateStatus.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/me/statistics", getStatistics.Handle).Methods(http.MethodGet)

	// Public profile route goes last so the dashboard literals above win.
	api.HandleFunc("/barbers/{barberId}", getBarber.Handle).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type", "X-User-ID", middleware.RequestIDHeader},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
