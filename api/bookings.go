package api

import (
	"net/http"

	"github.com/arjunm592/airtravel/internal/domain"
	"github.com/arjunm592/airtravel/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookRequest struct {
	Passenger struct {
		FullName string `json:"full_name"`
		Age      int    `json:"age"`
		Gender   string `json:"gender"`
		Email    string `json:"email"`
	} `json:"passenger"`
	FlightID    int64   `json:"flight_id"`
	SeatNumber  string  `json:"seat_number"`
	TravelClass string  `json:"travel_class"`
	Price       float64 `json:"price"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/book", h.book)
	router.GET("/reservations", h.reservations)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := h.service.Book(c.Request.Context(), booking.BookInput{
		FlightID: req.FlightID,
		Passenger: domain.Passenger{
			FullName: req.Passenger.FullName,
			Age:      req.Passenger.Age,
			Gender:   req.Passenger.Gender,
			Email:    req.Passenger.Email,
		},
		SeatNumber:  req.SeatNumber,
		TravelClass: req.TravelClass,
		Price:       req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "booked"})
}

func (h *BookingHandler) reservations(c *gin.Context) {
	result, err := h.service.Reservations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
