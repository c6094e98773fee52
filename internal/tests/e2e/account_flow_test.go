package e2e

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func userPath(userID uint, suffix string) string {
	return fmt.Sprintf("/api/v1/users/%d%s", userID, suffix)
}

func TestSignupLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	userID, signupToken := ts.signup(t, "jane@example.com", "password123")

	// The signup token validates immediately
	w := ts.do(t, http.MethodPost, userPath(userID, "/validate-session"), signupToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected signup token to validate, got %d: %s", w.Code, w.Body.String())
	}

	// A second login issues a distinct token; both stay valid
	w = ts.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}
	loginToken := ts.decode(t, w)["token"].(string)
	if loginToken == signupToken {
		t.Error("expected a fresh token per login")
	}

	for _, token := range []string{signupToken, loginToken} {
		w = ts.do(t, http.MethodPost, userPath(userID, "/validate-session"), token, nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected token %s to validate, got %d", token, w.Code)
		}
	}

	// Duplicate signup is rejected
	w = ts.do(t, http.MethodPost, "/api/v1/users/signup", "", map[string]string{
		"email":     "jane@example.com",
		"password":  "otherpassword",
		"firstName": "Other",
		"lastName":  "User",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected duplicate signup rejected with 403, got %d", w.Code)
	}

	// Wrong password is rejected uniformly
	w = ts.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "wrongpassword",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected wrong password rejected with 403, got %d", w.Code)
	}
}

func TestLogoutFlow(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.signup(t, "jane@example.com", "password123")

	w := ts.do(t, http.MethodPost, userPath(userID, "/logout"), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout failed with status %d: %s", w.Code, w.Body.String())
	}

	// The revoked token no longer passes the gate
	w = ts.do(t, http.MethodPost, userPath(userID, "/validate-session"), token, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected revoked token rejected with 403, got %d", w.Code)
	}
}

func TestSessionGateBindsOwner(t *testing.T) {
	ts := newTestServer(t)
	_, tokenA := ts.signup(t, "alice@example.com", "password123")
	userB, _ := ts.signup(t, "bob@example.com", "password123")

	// Alice's token does not open Bob's routes
	w := ts.do(t, http.MethodGet, userPath(userB, ""), tokenA, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected cross-user access rejected with 403, got %d", w.Code)
	}
	body := ts.decode(t, w)
	if body["message"] != "Invalid session." {
		t.Errorf("unexpected message %v", body["message"])
	}
}

func TestPasswordResetFlow(t *testing.T) {
	ts := newTestServer(t)
	userID, _ := ts.signup(t, "jane@example.com", "password123")

	w := ts.do(t, http.MethodPost, "/api/v1/users/reset-password", "", map[string]string{
		"email": "jane@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("reset failed with status %d: %s", w.Code, w.Body.String())
	}

	if len(ts.Mailer.Sent) != 1 {
		t.Fatalf("expected 1 reset mail, got %d", len(ts.Mailer.Sent))
	}
	mailBody := ts.Mailer.Sent[0].Body
	idx := strings.Index(mailBody, "Temporary password: ")
	if idx < 0 {
		t.Fatalf("reset mail carries no temporary password: %q", mailBody)
	}
	tempPassword := mailBody[idx+len("Temporary password: "):]

	// Both the original and the temporary password log in
	for _, password := range []string{"password123", tempPassword} {
		w = ts.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
			"email":    "jane@example.com",
			"password": password,
		})
		if w.Code != http.StatusOK {
			t.Errorf("expected login with %q to succeed, got %d", password, w.Code)
		}
	}

	// Changing the password closes the reset window
	token := func() string {
		w := ts.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
			"email":    "jane@example.com",
			"password": tempPassword,
		})
		return ts.decode(t, w)["token"].(string)
	}()

	w = ts.do(t, http.MethodPost, userPath(userID, "/update-password"), token, map[string]string{
		"oldPassword": tempPassword,
		"newPassword": "newpassword456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("password update failed with status %d: %s", w.Code, w.Body.String())
	}

	w = ts.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": tempPassword,
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected temporary password invalid after change, got %d", w.Code)
	}

	w = ts.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "newpassword456",
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected new password to log in, got %d", w.Code)
	}

	// The reset endpoint does not acknowledge unknown addresses
	w = ts.do(t, http.MethodPost, "/api/v1/users/reset-password", "", map[string]string{
		"email": "nobody@example.com",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown email, got %d", w.Code)
	}
}

func TestProfileUpdateFlow(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.signup(t, "jane@example.com", "password123")
	ts.signup(t, "taken@example.com", "password123")

	// Partial update
	w := ts.do(t, http.MethodPut, userPath(userID, ""), token, map[string]string{
		"firstName": "Janet",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("profile update failed with status %d: %s", w.Code, w.Body.String())
	}

	w = ts.do(t, http.MethodGet, userPath(userID, ""), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile fetch failed with status %d: %s", w.Code, w.Body.String())
	}
	body := ts.decode(t, w)
	if body["firstName"] != "Janet" {
		t.Errorf("expected first name Janet, got %v", body["firstName"])
	}
	if body["email"] != "jane@example.com" {
		t.Errorf("expected untouched email, got %v", body["email"])
	}

	// Email collision
	w = ts.do(t, http.MethodPut, userPath(userID, ""), token, map[string]string{
		"email": "taken@example.com",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected email collision rejected with 403, got %d", w.Code)
	}
}

func TestAccountDeletionFlow(t *testing.T) {
	ts := newTestServer(t)
	userID, token := ts.signup(t, "jane@example.com", "password123")

	// Wrong password does not delete
	w := ts.do(t, http.MethodDelete, userPath(userID, ""), token, map[string]string{
		"password": "wrongpassword",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected wrong-password deletion rejected with 403, got %d", w.Code)
	}

	w = ts.do(t, http.MethodDelete, userPath(userID, ""), token, map[string]string{
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("deletion failed with status %d: %s", w.Code, w.Body.String())
	}

	// Every session died with the account
	w = ts.do(t, http.MethodPost, userPath(userID, "/validate-session"), token, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected sessions revoked after deletion, got %d", w.Code)
	}

	// And the credentials no longer work
	w = ts.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("expected deleted account login rejected, got %d", w.Code)
	}
}
