package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
)

// loginRateLimit caps login attempts per client IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

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

// SetupRouter wires controllers onto the route tree. Everything under /api
// except login requires a staff token; room and room-type writes
// additionally require the manager role.
func SetupRouter(
	ac *controllers.AuthController,
	gc *controllers.GuestController,
	rc *controllers.RoomController,
	tc *controllers.RoomTypeController,
	resc *controllers.ReservationController,
	avc *controllers.AvailabilityController,
	jwtSecret string,
	rdb *redis.Client,
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

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimit(rdb, loginRateLimit, loginRateWindow), ac.Login)
		auth.GET("/me", middleware.RequireAuth(jwtSecret), ac.Me)
	}

	staff := api.Group("")
	staff.Use(middleware.RequireAuth(jwtSecret))
	{
		guests := staff.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.CreateGuest)
			guests.GET("/:id", gc.GetGuestByID)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
			guests.GET("/:id/reservations", gc.GetGuestReservations)
		}

		rooms := staff.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:number", rc.GetRoomByNumber)
			rooms.POST("", middleware.RequireManager(), rc.CreateRoom)
			rooms.PUT("/:number", middleware.RequireManager(), rc.UpdateRoom)
			rooms.DELETE("/:number", middleware.RequireManager(), rc.DeleteRoom)
		}

		roomTypes := staff.Group("/room-types")
		{
			roomTypes.GET("", tc.GetRoomTypes)
			roomTypes.GET("/:code", tc.GetRoomTypeByCode)
			roomTypes.POST("", middleware.RequireManager(), tc.CreateRoomType)
			roomTypes.PUT("/:code", middleware.RequireManager(), tc.UpdateRoomType)
			roomTypes.DELETE("/:code", middleware.RequireManager(), tc.DeleteRoomType)
		}

		reservations := staff.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			reservations.POST("", resc.CreateReservation)
			reservations.GET("/reference/:code", resc.GetReservationByReference)
			reservations.GET("/:id", resc.GetReservationByID)
			reservations.PUT("/:id", resc.UpdateReservation)
			reservations.DELETE("/:id", resc.DeleteReservation)
			reservations.POST("/:id/check-in", resc.CheckIn)
			reservations.POST("/:id/check-out", resc.CheckOut)
			reservations.GET("/:id/events", resc.GetReservationEvents)
		}

		staff.GET("/available-rooms", avc.GetAvailableRooms)
	}

	return r
}
