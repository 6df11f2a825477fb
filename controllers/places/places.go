package placesControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Thin proxy over the Google Places / Directions APIs so the browser never
// sees the API key. Base URLs are variables so tests can point them at a
// fake server.

var (
	placesBaseURL     = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	directionsBaseURL = "https://maps.googleapis.com/maps/api/directions/json"

	httpClient = &http.Client{Timeout: 10 * time.Second}
)

// The storefront only searches for repair shops and charging stations.
var validPlaceTypes = map[string]bool{
	"car_repair":                        true,
	"bicycle_store":                     true,
	"electric_vehicle_charging_station": true,
}

const maxNearbyResults = 5

type Place struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Rating         float64  `json:"rating"`
	TotalReviews   int      `json:"total_reviews"`
	IsOpenNow      bool     `json:"is_open_now"`
	Types          []string `json:"types"`
	PhotoReference string   `json:"photo_reference,omitempty"`
}

// Subset of the Places API response this proxy cares about.
type placesResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Types            []string `json:"types"`
		OpeningHours     *struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

// GET /api/nearby?latitude=&longitude=&type=
func Nearby(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		latitude := c.Query("latitude")
		longitude := c.Query("longitude")
		placeType := c.Query("type")
		if latitude == "" || longitude == "" || placeType == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing parameters"})
			return
		}

		lat, errLat := strconv.ParseFloat(latitude, 64)
		lng, errLng := strconv.ParseFloat(longitude, 64)
		if errLat != nil || errLng != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid latitude or longitude"})
			return
		}
		if !validPlaceTypes[placeType] {
			c.JSON(http.StatusBadRequest, gin.H{"msg": fmt.Sprintf("Invalid place type: %s", placeType)})
			return
		}
		if apiKey == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Google Maps API key is missing"})
			return
		}

		url := fmt.Sprintf("%s?location=%f,%f&rankby=distance&type=%s&key=%s",
			placesBaseURL, lat, lng, placeType, apiKey)
		resp, err := httpClient.Get(url)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch nearby places"})
			return
		}
		defer resp.Body.Close()

		var apiResp placesResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch nearby places"})
			return
		}
		if apiResp.Status != "OK" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": fmt.Sprintf("Google Places API error: %s", apiResp.Status)})
			return
		}

		places := []Place{}
		for _, result := range apiResp.Results {
			if result.PlaceID == "" || result.Name == "" {
				continue
			}
			place := Place{
				ID:           result.PlaceID,
				Name:         result.Name,
				Address:      result.Vicinity,
				Latitude:     result.Geometry.Location.Lat,
				Longitude:    result.Geometry.Location.Lng,
				Rating:       result.Rating,
				TotalReviews: result.UserRatingsTotal,
				Types:        result.Types,
			}
			if place.Address == "" {
				place.Address = "No address available"
			}
			if result.OpeningHours != nil {
				place.IsOpenNow = result.OpeningHours.OpenNow
			}
			if len(result.Photos) > 0 {
				place.PhotoReference = result.Photos[0].PhotoReference
			}
			places = append(places, place)
			if len(places) == maxNearbyResults {
				break
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "data": places})
	}
}

type directionsResponse struct {
	Routes []struct {
		Legs []struct {
			Steps []struct {
				EndLocation struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"end_location"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

type waypoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GET /api/route?source_lat=&source_lng=&dest_lat=&dest_lng=
func Route(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sourceLat := c.Query("source_lat")
		sourceLng := c.Query("source_lng")
		destLat := c.Query("dest_lat")
		destLng := c.Query("dest_lng")
		if sourceLat == "" || sourceLng == "" || destLat == "" || destLng == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing parameters"})
			return
		}

		url := fmt.Sprintf("%s?origin=%s,%s&destination=%s,%s&key=%s",
			directionsBaseURL, sourceLat, sourceLng, destLat, destLng, apiKey)
		resp, err := httpClient.Get(url)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch route"})
			return
		}
		defer resp.Body.Close()

		var raw json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch route"})
			return
		}

		var route directionsResponse
		waypoints := []waypoint{}
		if err := json.Unmarshal(raw, &route); err == nil && len(route.Routes) > 0 && len(route.Routes[0].Legs) > 0 {
			for _, step := range route.Routes[0].Legs[0].Steps {
				waypoints = append(waypoints, waypoint{Lat: step.EndLocation.Lat, Lng: step.EndLocation.Lng})
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
			"route":     raw,
			"waypoints": waypoints,
		}})
	}
}

type LocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// POST /location
func ReportLocation(c *gin.Context) {
	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid location payload"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Location received successfully",
		"data":    input,
	})
}
