package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/logger"
)

// WeatherHandler relays forecast and geocoding lookups to the weather
// upstream.
type WeatherHandler struct {
	relay       *Relay
	forecastURL string
	geocodeURL  string
}

func NewWeatherHandler(relay *Relay, forecastURL, geocodeURL string) *WeatherHandler {
	return &WeatherHandler{
		relay:       relay,
		forecastURL: forecastURL,
		geocodeURL:  geocodeURL,
	}
}

type forecastRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *WeatherHandler) Forecast(c *gin.Context) {
	var req forecastRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%g", *req.Latitude))
	query.Set("longitude", fmt.Sprintf("%g", *req.Longitude))
	query.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code")
	query.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
	query.Set("timezone", "auto")

	status, body, err := h.relay.GetJSON(c.Request.Context(), h.forecastURL+"?"+query.Encode())
	if err != nil {
		logger.Error("weather upstream failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather service unavailable"})
		return
	}

	c.Data(status, "application/json", body)
}

type geocodeRequest struct {
	Name string `json:"name"`
}

func (h *WeatherHandler) Geocode(c *gin.Context) {
	var req geocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	query := url.Values{}
	query.Set("name", req.Name)
	query.Set("count", "5")

	status, body, err := h.relay.GetJSON(c.Request.Context(), h.geocodeURL+"?"+query.Encode())
	if err != nil {
		logger.Error("geocoding upstream failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
		return
	}

	c.Data(status, "application/json", body)
}
