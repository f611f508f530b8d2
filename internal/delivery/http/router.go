package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"devevents/internal/delivery/http/controllers"
	"devevents/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, bookingController *controllers.BookingController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/featured", eventController.FeaturedEvents)
	mux.HandleFunc("GET /api/events/{slug}", eventController.GetEvent)
	mux.HandleFunc("PATCH /api/events/{slug}", eventController.UpdateEvent)
	mux.HandleFunc("GET /api/events/{slug}/similar", eventController.ListSimilarEvents)

	// Bookings
	mux.HandleFunc("POST /api/bookings", bookingController.CreateBooking)
	mux.HandleFunc("GET /api/events/{slug}/bookings/count", bookingController.CountBookings)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router in the middleware chain. Recovery runs innermost
// so a recovered panic is still logged with its 500 status.
func NewHandler(router http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	h := middleware.Recovery(logger, router)
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.Logging(logger, h)
	return middleware.RequestID(h)
}
