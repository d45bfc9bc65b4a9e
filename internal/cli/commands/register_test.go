package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
)

func TestRegisterCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	e := newTestEnv(t, server.URL, nil, nil)
	var output bytes.Buffer

	input := gateway.RegisterInput{Username: "bob", Password: "secret123"}
	if err := runRegister(e, input, &output); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if !strings.Contains(output.String(), "Run 'smartlib login'") {
		t.Errorf("expected the explicit-login hint, got: %s", output.String())
	}
	if e.sess.IsLoggedIn() {
		t.Error("registration must not log the user in")
	}
}

func TestRegisterCommand_ServerErrorPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"invalid admin key"}`))
	}))
	defer server.Close()

	e := newTestEnv(t, server.URL, nil, nil)

	input := gateway.RegisterInput{
		Username: "bob",
		Password: "secret123",
		Role:     "ADMIN",
		AdminKey: "wrong",
	}
	err := runRegister(e, input, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "invalid admin key" {
		t.Errorf("expected server error passed through, got: %s", err.Error())
	}
	if e.sess.IsLoggedIn() {
		t.Error("failed registration must not mutate session state")
	}
}

func TestRegisterCommand_AdminKeyRequired(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	e := newTestEnv(t, server.URL, nil, nil)

	input := gateway.RegisterInput{Username: "bob", Password: "secret123", Role: "ADMIN"}
	err := runRegister(e, input, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if err.Error() != "adminKey is required" {
		t.Errorf("expected adminKey message, got: %s", err.Error())
	}
	if calls != 0 {
		t.Errorf("validation errors must never reach the backend, got %d calls", calls)
	}
}
