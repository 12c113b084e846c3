package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/service/bookings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of bookings.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) ListForEmail(ctx context.Context, email string) ([]bookings.BookingView, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bookings.BookingView), args.Error(1)
}

func (m *MockBookingUseCase) RequestCancellation(ctx context.Context, bid string) (*domain.Booking, error) {
	args := m.Called(ctx, bid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "bid", Value: "B007"}}
	c.Request = httptest.NewRequest("POST", "/api/bookings/B007/cancel", nil)

	cancelled := &domain.Booking{BID: "B007", PID: "P004", FlNo: "FL011", Status: domain.BookingStatusCancelled}
	mockService.On("RequestCancellation", c.Request.Context(), "B007").Return(cancelled, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.Booking
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, response.Status)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_insideCutoff(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "bid", Value: "B008"}}
	c.Request = httptest.NewRequest("POST", "/api/bookings/B008/cancel", nil)

	mockService.On("RequestCancellation", c.Request.Context(), "B008").Return(nil, domain.ErrCancellationNotAllowed)

	handler.cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Annulation impossible : le vol part dans moins de 24 heures.", response["error"])
}

func TestBookingHandler_cancel_unknownBooking(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "bid", Value: "B404"}}
	c.Request = httptest.NewRequest("POST", "/api/bookings/B404/cancel", nil)

	mockService.On("RequestCancellation", c.Request.Context(), "B404").Return(nil, domain.ErrNotFound)

	handler.cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_myBookings(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/api/my-bookings?email=paul@example.com", nil)

	views := []bookings.BookingView{
		{Booking: domain.Booking{BID: "B001"}, TimeUntilFlight: "4 jours restants", CanCancel: true},
		{Booking: domain.Booking{BID: "B002"}, TimeUntilFlight: "Vol passé", CanCancel: false},
	}
	mockService.On("ListForEmail", c.Request.Context(), "paul@example.com").Return(views, nil)

	handler.myBookings(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []bookings.BookingView
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.True(t, response[0].CanCancel)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_myBookings_missingEmail(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/api/my-bookings", nil)

	handler.myBookings(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListForEmail")
}
