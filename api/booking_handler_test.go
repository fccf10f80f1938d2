package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/club-booking-backend/api"
	mock_api "github.com/hanksha/club-booking-backend/api/mocks"
	"github.com/hanksha/club-booking-backend/auth"
	bk "github.com/hanksha/club-booking-backend/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	customer = auth.Actor{ID: "customer-1", Role: auth.RoleCustomer}
	owner    = auth.Actor{ID: "owner-1", Role: auth.RoleOwner}
	admin    = auth.Actor{ID: "admin-1", Role: auth.RoleAdmin}
)

func setActorInContext(actor auth.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func setupRouterWithActor(t *testing.T, actor auth.Actor) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService)
	rg := router.Group("/api/v1")
	rg.Use(setActorInContext(actor))
	handler.Register(rg)

	return router, ctrl, mockService
}

func serve(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestGetSlots(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().GetAvailableSlots(gomock.Any(), "svc-1", "2030-01-07").Return([]string{"08:00-09:00"}, nil).Times(1)

		w := serve(router, "GET", "/api/v1/services/svc-1/slots?date=2030-01-07", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `["08:00-09:00"]`, w.Body.String())
	})

	t.Run("service not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().GetAvailableSlots(gomock.Any(), "svc-1", "").Return(nil, bk.ErrServiceNotFound).Times(1)

		w := serve(router, "GET", "/api/v1/services/svc-1/slots", nil)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"not found: service not found or inactive"}`, w.Body.String())
	})
}

func TestCreate(t *testing.T) {
	body := []byte(`{"serviceId":"svc-1","date":"2030-01-07","startTime":"10:00","endTime":"11:00","notes":"hi"}`)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		inserted := bk.Booking{ID: "123", CustomerID: customer.ID, ServiceID: "svc-1", Status: bk.StatusPending}
		insertedJson, _ := json.Marshal(inserted)

		mockService.EXPECT().CreateBooking(gomock.Any(), bk.CreateRequest{
			CustomerID: customer.ID,
			ServiceID:  "svc-1",
			Date:       "2030-01-07",
			StartTime:  "10:00",
			EndTime:    "11:00",
			Notes:      "hi",
		}).Return(inserted, nil).Times(1)

		w := serve(router, "POST", "/api/v1/bookings", body)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(insertedJson), w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		w := serve(router, "POST", "/api/v1/bookings", []byte("{"))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("missing field", func(t *testing.T) {
		router, ctrl, _ := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		w := serve(router, "POST", "/api/v1/bookings", []byte(`{"serviceId":"svc-1"}`))

		assert.Equal(t, 400, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(bk.Booking{}, bk.ErrSlotConflict).Times(1)

		w := serve(router, "POST", "/api/v1/bookings", body)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"conflict: time slot already booked"}`, w.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(bk.Booking{}, bk.ErrBookingInPast).Times(1)

		w := serve(router, "POST", "/api/v1/bookings", body)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(bk.Booking{}, assert.AnError).Times(1)

		w := serve(router, "POST", "/api/v1/bookings", body)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to create booking"}`, w.Body.String())
	})

	t.Run("owners cannot book", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, owner)
		defer ctrl.Finish()

		mockService.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		w := serve(router, "POST", "/api/v1/bookings", body)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})
}

func TestGetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", Status: bk.StatusConfirmed}
		bJson, _ := json.MarshalIndent(b, "", "    ")
		mockService.EXPECT().FindBookingByID(gomock.Any(), customer, "123").Return(b, nil).Times(1)

		w := serve(router, "GET", "/api/v1/bookings/123", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), customer, "123").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := serve(router, "GET", "/api/v1/bookings/123", nil)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"not found: booking not found"}`, w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), customer, "123").Return(bk.Booking{}, assert.AnError).Times(1)

		w := serve(router, "GET", "/api/v1/bookings/123", nil)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to fetch booking"}`, w.Body.String())
	})
}

func TestGetStatus(t *testing.T) {
	router, ctrl, mockService := setupRouterWithActor(t, customer)
	defer ctrl.Finish()

	mockService.EXPECT().GetBookingStatus(gomock.Any(), "123").Return(bk.StatusExpired, nil).Times(1)

	w := serve(router, "GET", "/api/v1/bookings/123/status", nil)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"id":"123","status":"expired"}`, w.Body.String())
}

func TestGetMine(t *testing.T) {
	t.Run("filters and paging", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		confirmed := bk.StatusConfirmed
		mockService.EXPECT().GetCustomerBookings(gomock.Any(), customer.ID, bk.ListFilter{Status: &confirmed, Limit: 5, Skip: 10}).
			Return([]bk.Booking{}, nil).Times(1)

		w := serve(router, "GET", "/api/v1/bookings/me?status=confirmed&limit=5&skip=10", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("invalid status", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().GetCustomerBookings(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := serve(router, "GET", "/api/v1/bookings/me?status=archived", nil)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid status filter"}`, w.Body.String())
	})

	t.Run("invalid limit", func(t *testing.T) {
		router, ctrl, _ := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		w := serve(router, "GET", "/api/v1/bookings/me?limit=ten", nil)

		assert.Equal(t, 400, w.Code)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("status change", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, owner)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateBooking(gomock.Any(), owner, "123", gomock.Any()).
			DoAndReturn(func(_ any, _ auth.Actor, _ string, req bk.UpdateRequest) (bk.Booking, error) {
				require.NotNil(t, req.Status)
				assert.Equal(t, bk.StatusConfirmed, *req.Status)
				assert.Nil(t, req.Notes)
				return bk.Booking{ID: "123", Status: bk.StatusConfirmed}, nil
			}).Times(1)

		w := serve(router, "PATCH", "/api/v1/bookings/123", []byte(`{"status":"confirmed"}`))

		assert.Equal(t, 200, w.Code)
	})

	t.Run("forbidden transition", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateBooking(gomock.Any(), customer, "123", gomock.Any()).
			Return(bk.Booking{}, bk.Decide(auth.RoleCustomer, bk.StatusPending, bk.StatusConfirmed).Err()).Times(1)

		w := serve(router, "PATCH", "/api/v1/bookings/123", []byte(`{"status":"confirmed"}`))

		assert.Equal(t, 403, w.Code)
	})

	t.Run("nothing to update", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().UpdateBooking(gomock.Any(), customer, "123", bk.UpdateRequest{}).Return(bk.Booking{}, bk.ErrNothingToUpdate).Times(1)

		w := serve(router, "PATCH", "/api/v1/bookings/123", []byte(`{}`))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"bad request: nothing to update"}`, w.Body.String())
	})
}

func TestReschedule(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		req := bk.RescheduleRequest{Date: "2030-01-08", StartTime: "15:00", EndTime: "16:00"}
		proposal := bk.Booking{ID: "456", RescheduleOf: "123", Status: bk.StatusReschedulePending}
		proposalJson, _ := json.Marshal(proposal)

		mockService.EXPECT().RequestReschedule(gomock.Any(), customer, "123", req).Return(proposal, nil).Times(1)

		body, _ := json.Marshal(req)
		w := serve(router, "POST", "/api/v1/bookings/123/reschedule", body)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(proposalJson), w.Body.String())
	})

	t.Run("invalid state", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().RequestReschedule(gomock.Any(), customer, "123", gomock.Any()).Return(bk.Booking{}, bk.ErrInvalidBookingState).Times(1)

		w := serve(router, "POST", "/api/v1/bookings/123/reschedule", []byte(`{"date":"2030-01-08"}`))

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"bad request: invalid booking state"}`, w.Body.String())
	})
}

func TestClubRoutes(t *testing.T) {
	t.Run("club bookings", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, owner)
		defer ctrl.Finish()

		mockService.EXPECT().GetClubBookings(gomock.Any(), owner, "club-1", bk.ListFilter{}).Return([]bk.Booking{{ID: "1"}}, nil).Times(1)

		w := serve(router, "GET", "/api/v1/clubs/club-1/bookings", nil)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("customers are rejected before the service", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, customer)
		defer ctrl.Finish()

		mockService.EXPECT().GetClubBookings(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := serve(router, "GET", "/api/v1/clubs/club-1/bookings", nil)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("another owner's club", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, owner)
		defer ctrl.Finish()

		mockService.EXPECT().GetBookingCountPerService(gomock.Any(), owner, "club-2").Return(nil, bk.ErrNotAllowed).Times(1)

		w := serve(router, "GET", "/api/v1/clubs/club-2/stats/service", nil)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("day stats", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, owner)
		defer ctrl.Finish()

		stats := []bk.WeekDayBookingCount{{WeekDay: "Monday", Count: 3}}
		mockService.EXPECT().GetBookingCountPerWeekDay(gomock.Any(), owner, "club-1").Return(stats, nil).Times(1)

		w := serve(router, "GET", "/api/v1/clubs/club-1/stats/day", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[{"dayOfWeek":"Monday","bookingCount":3}]`, w.Body.String())
	})

	t.Run("service day view", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, owner)
		defer ctrl.Finish()

		mockService.EXPECT().GetBookingsByServiceAndDate(gomock.Any(), owner, "svc-1", "2030-01-07").Return([]bk.Booking{}, nil).Times(1)

		w := serve(router, "GET", "/api/v1/services/svc-1/bookings?date=2030-01-07", nil)

		assert.Equal(t, 200, w.Code)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("expire", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().ExpireOverdueBookings(gomock.Any()).Return(int64(7), nil).Times(1)

		w := serve(router, "POST", "/api/v1/admin/bookings/expire", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"expired":7}`, w.Body.String())
	})

	t.Run("expire requires admin", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, owner)
		defer ctrl.Finish()

		mockService.EXPECT().ExpireOverdueBookings(gomock.Any()).Times(0)

		w := serve(router, "POST", "/api/v1/admin/bookings/expire", nil)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("customers", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithActor(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().GetDistinctCustomerIDs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q bk.CustomerQuery) ([]string, error) {
				assert.Equal(t, "club-1", q.ClubID)
				assert.Equal(t, []bk.Status{bk.StatusPending, bk.StatusConfirmed}, q.Statuses)
				require.NotNil(t, q.From)
				assert.Equal(t, "2030-01-01", q.From.Format("2006-01-02"))
				assert.Nil(t, q.To)
				return []string{"customer-1"}, nil
			}).Times(1)

		w := serve(router, "GET", "/api/v1/admin/customers?clubId=club-1&status=pending,confirmed&from=2030-01-01", nil)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `["customer-1"]`, w.Body.String())
	})

	t.Run("customers bad date", func(t *testing.T) {
		router, ctrl, _ := setupRouterWithActor(t, admin)
		defer ctrl.Finish()

		w := serve(router, "GET", "/api/v1/admin/customers?to=tomorrow", nil)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse to"}`, w.Body.String())
	})
}
