package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/arjunm592/airtravel/internal/domain"
	"github.com/arjunm592/airtravel/internal/opensky"
	"github.com/arjunm592/airtravel/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type LiveFlightSource interface {
	Snapshot(ctx context.Context, filter opensky.Filter) ([]opensky.LiveFlight, error)
}

type FlightHandler struct {
	service flights.FlightUseCase
	live    LiveFlightSource
}

type searchRequest struct {
	From string `json:"from" form:"from"`
	To   string `json:"to" form:"to"`
	Date string `json:"date" form:"date"`
}

func NewFlightHandler(service flights.FlightUseCase, live LiveFlightSource) *FlightHandler {
	return &FlightHandler{service: service, live: live}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.list)
	router.GET("/flights/search", h.search)
	router.POST("/flights/search", h.search)
	router.GET("/flights/live", h.liveSnapshot)
	router.GET("/flights/:id", h.get)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) list(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// search accepts filters from the query string on GET and from a JSON body
// on POST; both use the from/to/date naming of the original API.
func (h *FlightHandler) search(c *gin.Context) {
	var req searchRequest
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	} else {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
			return
		}
	}

	result, err := h.service.Search(c.Request.Context(), domain.SearchFilters{
		Origin:      req.From,
		Destination: req.To,
		Date:        req.Date,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) liveSnapshot(c *gin.Context) {
	if h.live == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "live flights not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	snapshot, err := h.live.Snapshot(c.Request.Context(), opensky.Filter{
		Country:          c.Query("country"),
		CallsignContains: c.Query("callsign"),
		Limit:            limit,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "live flight data unavailable"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
