package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/club-booking-backend/auth"
	bk "github.com/hanksha/club-booking-backend/booking"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_handler_mock.go -package=mocks

type BookingService interface {
	FindBookingByID(ctx context.Context, actor auth.Actor, id string) (bk.Booking, error)
	GetBookingStatus(ctx context.Context, id string) (bk.Status, error)
	CreateBooking(ctx context.Context, req bk.CreateRequest) (bk.Booking, error)
	UpdateBooking(ctx context.Context, actor auth.Actor, id string, req bk.UpdateRequest) (bk.Booking, error)
	RequestReschedule(ctx context.Context, actor auth.Actor, id string, req bk.RescheduleRequest) (bk.Booking, error)
	GetAvailableSlots(ctx context.Context, serviceID, date string) ([]string, error)
	GetBookingsByServiceAndDate(ctx context.Context, actor auth.Actor, serviceID, date string) ([]bk.Booking, error)
	GetCustomerBookings(ctx context.Context, customerID string, filter bk.ListFilter) ([]bk.Booking, error)
	GetClubBookings(ctx context.Context, actor auth.Actor, clubID string, filter bk.ListFilter) ([]bk.Booking, error)
	GetBookingCountPerService(ctx context.Context, actor auth.Actor, clubID string) ([]bk.ServiceBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context, actor auth.Actor, clubID string) ([]bk.WeekDayBookingCount, error)
	GetDistinctCustomerIDs(ctx context.Context, query bk.CustomerQuery) ([]string, error)
	ExpireOverdueBookings(ctx context.Context) (int64, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	clubStaff := RequireRole(auth.RoleOwner, auth.RoleAdmin)
	adminOnly := RequireRole(auth.RoleAdmin)

	rg.GET("/services/:serviceId/slots", h.GetSlots)
	rg.GET("/services/:serviceId/bookings", clubStaff, h.GetServiceDay)

	rg.POST("/bookings", RequireRole(auth.RoleCustomer), h.Create)
	rg.GET("/bookings/me", h.GetMine)
	rg.GET("/bookings/:id", h.GetByID)
	rg.GET("/bookings/:id/status", h.GetStatus)
	rg.PATCH("/bookings/:id", h.Update)
	rg.POST("/bookings/:id/reschedule", h.Reschedule)

	rg.GET("/clubs/:clubId/bookings", clubStaff, h.GetClubBookings)
	rg.GET("/clubs/:clubId/stats/service", clubStaff, h.GetServiceStats)
	rg.GET("/clubs/:clubId/stats/day", clubStaff, h.GetDayStats)

	rg.POST("/admin/bookings/expire", adminOnly, h.Expire)
	rg.GET("/admin/customers", adminOnly, h.GetCustomers)
}

// respondError maps the error kinds of the booking package to HTTP statuses.
// Messages of rejected requests are passed through, anything else is hidden
// behind fallback.
func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	switch {
	case errors.Is(err, bk.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func (h *BookingHandler) GetSlots(c *gin.Context) {
	slots, err := h.service.GetAvailableSlots(c.Request.Context(), c.Param("serviceId"), c.Query("date"))

	if err != nil {
		respondError(c, err, "failed to get available slots")
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *BookingHandler) GetServiceDay(c *gin.Context) {
	bookings, err := h.service.GetBookingsByServiceAndDate(c.Request.Context(), actorFrom(c), c.Param("serviceId"), c.Query("date"))

	if err != nil {
		respondError(c, err, "failed to get bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

type createBookingRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Notes     string `json:"notes"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var body createBookingRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), bk.CreateRequest{
		CustomerID: actorFrom(c).ID,
		ServiceID:  body.ServiceID,
		Date:       body.Date,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		Notes:      body.Notes,
	})

	if err != nil {
		respondError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) GetMine(c *gin.Context) {
	filter, err := parseListFilter(c)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookings, err := h.service.GetCustomerBookings(c.Request.Context(), actorFrom(c).ID, filter)

	if err != nil {
		respondError(c, err, "failed to get bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.service.FindBookingByID(c.Request.Context(), actorFrom(c), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetStatus(c *gin.Context) {
	id := c.Param("id")
	status, err := h.service.GetBookingStatus(c.Request.Context(), id)

	if err != nil {
		respondError(c, err, "failed to fetch booking status")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"id": id, "status": status})
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req bk.UpdateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.UpdateBooking(c.Request.Context(), actorFrom(c), c.Param("id"), req)

	if err != nil {
		respondError(c, err, "failed to update booking")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	var req bk.RescheduleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	proposal, err := h.service.RequestReschedule(c.Request.Context(), actorFrom(c), c.Param("id"), req)

	if err != nil {
		respondError(c, err, "failed to reschedule booking")
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

func (h *BookingHandler) GetClubBookings(c *gin.Context) {
	filter, err := parseListFilter(c)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookings, err := h.service.GetClubBookings(c.Request.Context(), actorFrom(c), c.Param("clubId"), filter)

	if err != nil {
		respondError(c, err, "failed to get bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetServiceStats(c *gin.Context) {
	stats, err := h.service.GetBookingCountPerService(c.Request.Context(), actorFrom(c), c.Param("clubId"))

	if err != nil {
		respondError(c, err, "failed to get stats")
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *BookingHandler) GetDayStats(c *gin.Context) {
	stats, err := h.service.GetBookingCountPerWeekDay(c.Request.Context(), actorFrom(c), c.Param("clubId"))

	if err != nil {
		respondError(c, err, "failed to get stats")
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *BookingHandler) Expire(c *gin.Context) {
	expired, err := h.service.ExpireOverdueBookings(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to expire bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"expired": expired})
}

func (h *BookingHandler) GetCustomers(c *gin.Context) {
	query := bk.CustomerQuery{
		ClubID:    c.Query("clubId"),
		ServiceID: c.Query("serviceId"),
	}

	if raw := c.Query("status"); raw != "" {
		for _, value := range strings.Split(raw, ",") {
			status, ok := bk.ParseStatus(strings.TrimSpace(value))

			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
				return
			}

			query.Statuses = append(query.Statuses, status)
		}
	}

	for name, target := range map[string]**time.Time{"from": &query.From, "to": &query.To} {
		raw := c.Query(name)

		if raw == "" {
			continue
		}

		t, err := time.Parse(time.DateOnly, raw)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse " + name})
			return
		}

		*target = &t
	}

	ids, err := h.service.GetDistinctCustomerIDs(c.Request.Context(), query)

	if err != nil {
		respondError(c, err, "failed to get customers")
		return
	}

	c.IndentedJSON(http.StatusOK, ids)
}

func parseListFilter(c *gin.Context) (bk.ListFilter, error) {
	var filter bk.ListFilter

	if raw := c.Query("status"); raw != "" {
		status, ok := bk.ParseStatus(raw)

		if !ok {
			return bk.ListFilter{}, errors.New("invalid status filter")
		}

		filter.Status = &status
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)

		if err != nil {
			return bk.ListFilter{}, errors.New("failed to parse limit")
		}

		filter.Limit = limit
	}

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)

		if err != nil {
			return bk.ListFilter{}, errors.New("failed to parse skip")
		}

		filter.Skip = skip
	}

	return filter, nil
}
