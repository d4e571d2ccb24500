package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"

	"innkeeper/internal/models"
)

// The validation paths reject bad payloads before any service is
// touched, so a handler wired with nil services exercises them fully.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(nil)

	r := gin.New()
	api := r.Group("/api")
	{
		bookings := api.Group("/booking")
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("/:id", h.GetBooking)
			bookings.PATCH("/cancel", h.CancelBooking)
			bookings.PATCH("/checkin", h.CheckInBooking)
			bookings.PATCH("/extend", h.ExtendStay)
		}

		rooms := api.Group("/room")
		{
			rooms.POST("", h.CreateRoom)
			rooms.PATCH("/:id/status", h.UpdateRoomStatus)
		}

		tasks := api.Group("/task")
		{
			tasks.POST("", h.CreateTask)
		}

		users := api.Group("/user")
		{
			users.POST("", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
		}

		invoices := api.Group("/invoice")
		{
			invoices.POST("", h.CreateInvoice)
		}
	}

	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingRejectsMissingCustomer(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "POST", "/api/booking", map[string]interface{}{
		"stays": []map[string]interface{}{
			{"room_id": 1, "check_in": "2024-03-01T00:00:00Z", "check_out": "2024-03-04T00:00:00Z"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsInvalidEmail(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "POST", "/api/booking", map[string]interface{}{
		"customer_name":  "Amara Nwosu",
		"customer_email": "not-an-email",
		"stays": []map[string]interface{}{
			{"room_id": 1, "check_in": "2024-03-01T00:00:00Z", "check_out": "2024-03-04T00:00:00Z"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsEmptyStays(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "POST", "/api/booking", map[string]interface{}{
		"customer_name":  "Amara Nwosu",
		"customer_email": "amara@example.com",
		"stays":          []map[string]interface{}{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsUnknownPaymentMode(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "POST", "/api/booking", map[string]interface{}{
		"customer_name":  "Amara Nwosu",
		"customer_email": "amara@example.com",
		"payment_mode":   "bitcoin",
		"stays": []map[string]interface{}{
			{"room_id": 1, "check_in": "2024-03-01T00:00:00Z", "check_out": "2024-03-04T00:00:00Z"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingRejectsNonNumericID(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "GET", "/api/booking/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelBookingRejectsMissingID(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "PATCH", "/api/booking/cancel", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckInRejectsMissingID(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "PATCH", "/api/booking/checkin", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtendStayRejectsPartialRequest(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "PATCH", "/api/booking/extend", map[string]interface{}{
		"booking_id": 7,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoomRejectsMissingRoomType(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "POST", "/api/room", map[string]interface{}{
		"room_number": "101",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRoomStatusRejectsBadFlag(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "PATCH", "/api/room/3/status", map[string]interface{}{
		"clean": "sometimes",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTaskRejectsUnknownStatus(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "POST", "/api/task", map[string]interface{}{
		"room_id": 1,
		"status":  "sparkling",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "POST", "/api/user", map[string]interface{}{
		"email":      "staff@example.com",
		"password":   "short",
		"first_name": "Ade",
		"surname":    "Okafor",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserRejectsShortPassword(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "PUT", "/api/user/1", map[string]interface{}{
		"email":      "staff@example.com",
		"password":   "short",
		"first_name": "Ade",
		"surname":    "Okafor",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Unlike creation, an account edit does not require a password
func TestUpdateUserPasswordOptional(t *testing.T) {
	var req models.UpdateUserRequest
	body := []byte(`{"email":"staff@example.com","first_name":"Ade","surname":"Okafor"}`)

	assert.NoError(t, binding.JSON.BindBody(body, &req))
	assert.Empty(t, req.Password)
}

func TestCreateInvoiceRejectsEmptyItems(t *testing.T) {
	r := setupRouter()

	w := doJSON(r, "POST", "/api/invoice", map[string]interface{}{
		"customer_name": "Amara Nwosu",
		"items":         []map[string]interface{}{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
