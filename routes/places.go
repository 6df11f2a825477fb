package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/00harsha00/fixmyride/config"
	placesControllers "github.com/00harsha00/fixmyride/controllers/places"
)

// SetupPlacesRoutes registers the mapping proxy and the location ping. These
// are public; the API key stays server-side.
func SetupPlacesRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/api/nearby", placesControllers.Nearby(cfg.GoogleMapsAPIKey))
	r.GET("/api/route", placesControllers.Route(cfg.GoogleMapsAPIKey))
	r.POST("/location", placesControllers.ReportLocation)
}
