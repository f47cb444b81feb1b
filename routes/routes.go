package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"event-backend/controllers"
	"event-backend/middleware"
)

const sessionName = "event_admin_session"

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	pc *controllers.PackageController,
	bc *controllers.BookingController,
	bdc *controllers.BusyDateController,
	ac *controllers.AuthController,
	sessionSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/event-packages", pc.GetEventPackages)
		api.POST("/book-event", bc.CreateBooking)

		admin := api.Group("/admin")
		{
			admin.POST("/login", ac.Login)
			admin.POST("/logout", ac.Logout)

			protected := admin.Group("")
			protected.Use(middleware.AdminRequired())
			{
				protected.GET("/stats", bc.GetDashboardStats)
				protected.GET("/bookings", bc.GetBookings)
				protected.GET("/bookings/:id", bc.GetBookingDetails)
				protected.PUT("/bookings/:id/status", bc.UpdateBookingStatus)
				protected.DELETE("/bookings/:id", bc.DeleteBooking)
				protected.GET("/busy-dates", bdc.GetBusyDates)
				protected.DELETE("/clear-all-bookings", bc.ClearAllBookings)
			}
		}
	}

	return r
}
