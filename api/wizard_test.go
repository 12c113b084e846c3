package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/rmoulin/skyflight/internal/service/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWizardUseCase is a mock implementation of wizard.WizardUseCase
type MockWizardUseCase struct {
	mock.Mock
}

func (m *MockWizardUseCase) StartSession(ctx context.Context) (*wizard.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Session), args.Error(1)
}

func (m *MockWizardUseCase) Search(ctx context.Context, sid string, criteria wizard.SearchCriteria) ([]domain.Flight, error) {
	args := m.Called(ctx, sid, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockWizardUseCase) SelectFlight(ctx context.Context, sid, flno string) (*wizard.Session, error) {
	args := m.Called(ctx, sid, flno)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Session), args.Error(1)
}

func (m *MockWizardUseCase) Back(ctx context.Context, sid string) (*wizard.Session, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Session), args.Error(1)
}

func (m *MockWizardUseCase) SubmitPassengerInfo(ctx context.Context, sid string, info wizard.PassengerInfo, class domain.CabinClass) (*wizard.Confirmation, error) {
	args := m.Called(ctx, sid, info, class)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Confirmation), args.Error(1)
}

func TestWizardHandler_start(t *testing.T) {
	mockService := &MockWizardUseCase{}
	handler := NewWizardHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/api/wizard/sessions", nil)

	session := &wizard.Session{ID: "sid-1", State: wizard.StateSearch}
	mockService.On("StartSession", c.Request.Context()).Return(session, nil)

	handler.start(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response wizard.Session
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "sid-1", response.ID)
	assert.Equal(t, wizard.StateSearch, response.State)

	mockService.AssertExpectations(t)
}

func TestWizardHandler_search(t *testing.T) {
	RegisterValidations()
	mockService := &MockWizardUseCase{}
	handler := NewWizardHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(searchRequest{Origin: "Paris", DepartureDate: "2025-03-10"})
	c.Params = gin.Params{{Key: "sid", Value: "sid-1"}}
	c.Request = httptest.NewRequest("POST", "/api/wizard/sessions/sid-1/search", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	criteria := wizard.SearchCriteria{Origin: "Paris", DepartureDate: "2025-03-10"}
	results := []domain.Flight{{FlNo: "FL001"}}
	mockService.On("Search", c.Request.Context(), "sid-1", criteria).Return(results, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Flights []domain.Flight `json:"flights"`
		Count   int             `json:"count"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "FL001", response.Flights[0].FlNo)

	mockService.AssertExpectations(t)
}

func TestWizardHandler_search_badDate(t *testing.T) {
	RegisterValidations()
	mockService := &MockWizardUseCase{}
	handler := NewWizardHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{"departure_date":"10/03/2025"}`)
	c.Params = gin.Params{{Key: "sid", Value: "sid-1"}}
	c.Request = httptest.NewRequest("POST", "/api/wizard/sessions/sid-1/search", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Search")
}

func TestWizardHandler_selectFlight(t *testing.T) {
	mockService := &MockWizardUseCase{}
	handler := NewWizardHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(selectFlightRequest{FlNo: "FL001"})
	c.Params = gin.Params{{Key: "sid", Value: "sid-1"}}
	c.Request = httptest.NewRequest("POST", "/api/wizard/sessions/sid-1/flight", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	session := &wizard.Session{
		ID:     "sid-1",
		State:  wizard.StateFlightSelected,
		Flight: &domain.Flight{FlNo: "FL001"},
	}
	mockService.On("SelectFlight", c.Request.Context(), "sid-1", "FL001").Return(session, nil)

	handler.selectFlight(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response wizard.Session
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, wizard.StateFlightSelected, response.State)

	mockService.AssertExpectations(t)
}

func TestWizardHandler_submitPassenger(t *testing.T) {
	RegisterValidations()
	mockService := &MockWizardUseCase{}
	handler := NewWizardHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(passengerInfoRequest{
		FirstName:      "Marie",
		LastName:       "Durand",
		Email:          "marie.durand@example.com",
		Phone:          "+33612345678",
		PassportNumber: "19AB12345",
		Nationality:    "Française",
		DateOfBirth:    "1990-05-20",
		Class:          "Business",
	})
	c.Params = gin.Params{{Key: "sid", Value: "sid-1"}}
	c.Request = httptest.NewRequest("POST", "/api/wizard/sessions/sid-1/passenger", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	info := wizard.PassengerInfo{
		FirstName:      "Marie",
		LastName:       "Durand",
		Email:          "marie.durand@example.com",
		Phone:          "+33612345678",
		PassportNumber: "19AB12345",
		Nationality:    "Française",
		DateOfBirth:    "1990-05-20",
	}
	confirmation := &wizard.Confirmation{
		Booking: domain.Booking{BID: "B001", PID: "P008", SeatNumber: "12C", Class: domain.ClassBusiness, Status: domain.BookingStatusConfirmed},
		Flight:  domain.Flight{FlNo: "FL001"},
	}
	mockService.On("SubmitPassengerInfo", c.Request.Context(), "sid-1", info, domain.ClassBusiness).Return(confirmation, nil)

	handler.submitPassenger(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response wizard.Confirmation
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "B001", response.Booking.BID)
	assert.Equal(t, domain.BookingStatusConfirmed, response.Booking.Status)

	mockService.AssertExpectations(t)
}

func TestWizardHandler_submitPassenger_invalidClass(t *testing.T) {
	RegisterValidations()
	mockService := &MockWizardUseCase{}
	handler := NewWizardHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{"first_name":"Marie","last_name":"Durand","email":"marie@example.com","phone":"+33612345678","passport_number":"19AB12345","nationality":"Française","date_of_birth":"1990-05-20","class":"Premium"}`)
	c.Params = gin.Params{{Key: "sid", Value: "sid-1"}}
	c.Request = httptest.NewRequest("POST", "/api/wizard/sessions/sid-1/passenger", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.submitPassenger(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SubmitPassengerInfo")
}
