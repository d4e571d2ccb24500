package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"innkeeper/internal/models"
)

// TestClient provides methods for testing the API
type TestClient struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
}

// NewTestClient creates a new test client
func NewTestClient(baseURL, username, password string) *TestClient {
	return &TestClient{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an authenticated HTTP request and returns the response
func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

// HealthCheck verifies the service is up
func (c *TestClient) HealthCheck(t *testing.T) {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/health")
	if err != nil {
		t.Fatalf("Failed to reach health endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 from /health, got %d", resp.StatusCode)
	}
}

// ListRooms lists rooms, optionally filtered by room type
func (c *TestClient) ListRooms(t *testing.T) []models.RoomResponse {
	resp := c.makeRequest(t, "GET", "/api/room", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var rooms []models.RoomResponse
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		t.Fatalf("Failed to decode rooms response: %v", err)
	}

	return rooms
}

// CreateBooking creates a new booking for a single room stay
func (c *TestClient) CreateBooking(t *testing.T, req models.CreateBookingRequest) *models.CreateBookingResponse {
	resp := c.makeRequest(t, "POST", "/api/booking", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var booking models.CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		t.Fatalf("Failed to decode booking response: %v", err)
	}

	return &booking
}

// GetBooking fetches a booking by ID
func (c *TestClient) GetBooking(t *testing.T, id int64) *models.BookingResponse {
	resp := c.makeRequest(t, "GET", fmt.Sprintf("/api/booking/%d", id), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var booking models.BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		t.Fatalf("Failed to decode booking response: %v", err)
	}

	return &booking
}

// ListBookings lists bookings with an optional status filter
func (c *TestClient) ListBookings(t *testing.T, status string) []models.BookingResponse {
	path := "/api/booking?page=1&pageSize=100"
	if status != "" {
		path += "&status=" + status
	}

	resp := c.makeRequest(t, "GET", path, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var bookings []models.BookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		t.Fatalf("Failed to decode bookings response: %v", err)
	}

	return bookings
}

// CancelBooking cancels a booking and expects the given status code
func (c *TestClient) CancelBooking(t *testing.T, bookingID int64, expectStatus int) {
	resp := c.makeRequest(t, "PATCH", "/api/booking/cancel", models.CancelBookingRequest{BookingID: bookingID})
	defer resp.Body.Close()

	if resp.StatusCode != expectStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", expectStatus, resp.StatusCode, string(body))
	}
}

// CheckInBooking checks a booking in and expects the given status code
func (c *TestClient) CheckInBooking(t *testing.T, bookingID int64, expectStatus int) {
	resp := c.makeRequest(t, "PATCH", "/api/booking/checkin", models.CheckInRequest{BookingID: bookingID})
	defer resp.Body.Close()

	if resp.StatusCode != expectStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", expectStatus, resp.StatusCode, string(body))
	}
}

// CheckOutBooking checks a booking out and expects the given status code
func (c *TestClient) CheckOutBooking(t *testing.T, bookingID int64, expectStatus int) {
	resp := c.makeRequest(t, "PATCH", "/api/booking/checkout", models.CheckOutRequest{BookingID: bookingID})
	defer resp.Body.Close()

	if resp.StatusCode != expectStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", expectStatus, resp.StatusCode, string(body))
	}
}

// SendPaymentNotification posts a gateway webhook payload
func (c *TestClient) SendPaymentNotification(t *testing.T, payload models.PaymentNotificationPayload) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal notification: %v", err)
	}

	// The webhook endpoint sits outside basic auth
	resp, err := c.HTTPClient.Post(c.BaseURL+"/api/payments/notifications", "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		t.Fatalf("Failed to send notification: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

// CreateUser registers a staff account
func (c *TestClient) CreateUser(t *testing.T, req models.CreateUserRequest) *models.User {
	resp := c.makeRequest(t, "POST", "/api/user", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("Failed to decode user response: %v", err)
	}

	return &user
}

// UpdateUser edits a staff account, rotating the password when one is set
func (c *TestClient) UpdateUser(t *testing.T, id int64, req models.UpdateUserRequest) *models.User {
	resp := c.makeRequest(t, "PUT", fmt.Sprintf("/api/user/%d", id), req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("Failed to decode user response: %v", err)
	}

	return &user
}

// DeactivateUser disables a staff account
func (c *TestClient) DeactivateUser(t *testing.T, id int64) {
	resp := c.makeRequest(t, "DELETE", fmt.Sprintf("/api/user/%d", id), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 204, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

// AuthStatus reports how the API answers this client's credentials
func (c *TestClient) AuthStatus(t *testing.T) int {
	resp := c.makeRequest(t, "GET", "/api/room", nil)
	defer resp.Body.Close()
	return resp.StatusCode
}

// BookingAnalytics fetches the booking statistics report
func (c *TestClient) BookingAnalytics(t *testing.T, meanDivisor string) *models.BookingAnalyticsResponse {
	path := "/api/analytics/bookings"
	if meanDivisor != "" {
		path += "?meanDivisor=" + meanDivisor
	}

	resp := c.makeRequest(t, "GET", path, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var report models.BookingAnalyticsResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("Failed to decode analytics response: %v", err)
	}

	return &report
}
