package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"innkeeper/internal/models"
)

// A password change must take effect immediately, including for
// credentials the auth cache has already resolved.
func TestUser_PasswordRotationRevokesOldCredentials(t *testing.T) {
	admin := newClient(t)

	email := fmt.Sprintf("e2e-%d@innkeeper.local", time.Now().UnixNano())

	LogTestStep(t, "Creating staff account %s", email)
	user := admin.CreateUser(t, models.CreateUserRequest{
		Email:     email,
		Password:  "firstpass123",
		FirstName: "Efe",
		Surname:   "Adeyemi",
		Role:      "staff",
	})

	staff := NewTestClient(admin.BaseURL, email, "firstpass123")
	if status := staff.AuthStatus(t); status != http.StatusOK {
		t.Fatalf("Fresh credentials rejected with status %d", status)
	}

	LogTestStep(t, "Rotating password for user %d", user.UserID)
	admin.UpdateUser(t, user.UserID, models.UpdateUserRequest{
		Email:     email,
		Password:  "secondpass123",
		FirstName: "Efe",
		Surname:   "Adeyemi",
	})

	if status := staff.AuthStatus(t); status != http.StatusUnauthorized {
		t.Fatalf("Old password still accepted with status %d", status)
	}

	rotated := NewTestClient(admin.BaseURL, email, "secondpass123")
	if status := rotated.AuthStatus(t); status != http.StatusOK {
		t.Fatalf("New password rejected with status %d", status)
	}

	LogTestStep(t, "Deactivating user %d", user.UserID)
	admin.DeactivateUser(t, user.UserID)

	if status := rotated.AuthStatus(t); status != http.StatusUnauthorized {
		t.Fatalf("Deactivated account still accepted with status %d", status)
	}

	LogTestResult(t, "Credential lifecycle enforced for user %d", user.UserID)
}

// An edit without a password must succeed and leave the credentials alone
func TestUser_UpdateWithoutPasswordKeepsCredentials(t *testing.T) {
	admin := newClient(t)

	email := fmt.Sprintf("e2e-%d@innkeeper.local", time.Now().UnixNano())

	user := admin.CreateUser(t, models.CreateUserRequest{
		Email:     email,
		Password:  "firstpass123",
		FirstName: "Chiamaka",
		Surname:   "Obi",
	})

	updated := admin.UpdateUser(t, user.UserID, models.UpdateUserRequest{
		Email:     email,
		FirstName: "Chiamaka",
		Surname:   "Obiora",
	})
	if updated.Surname != "Obiora" {
		t.Fatalf("Expected surname 'Obiora', got '%s'", updated.Surname)
	}

	staff := NewTestClient(admin.BaseURL, email, "firstpass123")
	if status := staff.AuthStatus(t); status != http.StatusOK {
		t.Fatalf("Password unexpectedly changed, status %d", status)
	}

	admin.DeactivateUser(t, user.UserID)
}
