package api

import (
	"net/http"

	"github.com/arjunm592/airtravel/internal/service/flights"
	"github.com/arjunm592/airtravel/internal/service/nlsearch"
	"github.com/gin-gonic/gin"
)

type NLSearchHandler struct {
	extractor nlsearch.ExtractorUseCase
	flights   flights.FlightUseCase
}

type nlSearchRequest struct {
	Query string `json:"query"`
}

func NewNLSearchHandler(extractor nlsearch.ExtractorUseCase, flightSvc flights.FlightUseCase) *NLSearchHandler {
	return &NLSearchHandler{extractor: extractor, flights: flightSvc}
}

func (h *NLSearchHandler) Register(router *gin.RouterGroup) {
	router.POST("/nlsearch", h.search)
}

// search extracts filters from the user's text and runs a regular flight
// search with them. Extraction never fails; an empty filter set just means
// an unfiltered search.
func (h *NLSearchHandler) search(c *gin.Context) {
	var req nlSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	params := h.extractor.Extract(c.Request.Context(), req.Query)

	results, err := h.flights.Search(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"params":  params,
		"results": results,
	})
}
