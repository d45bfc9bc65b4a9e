package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nafish32/smartlibrary-cli/internal/gateway"
)

func TestAdminCommands_RequireAdminRole(t *testing.T) {
	store := seededStore(t, "t1", "alice", "ROLE_USER")
	e := newTestEnv(t, "http://127.0.0.1:0", store, nil)

	err := runAdminUsersList(e, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for non-admin user, got nil")
	}

	expected := "admin access required (logged in as alice)"
	if err.Error() != expected {
		t.Errorf("expected '%s', got '%s'", expected, err.Error())
	}
}

func TestAdminCommands_RequireLogin(t *testing.T) {
	e := newTestEnv(t, "http://127.0.0.1:0", nil, nil)

	err := runAdminBooksList(e, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error when not logged in, got nil")
	}
	if !strings.Contains(err.Error(), "smartlib login") {
		t.Errorf("expected login hint, got: %s", err.Error())
	}
}

func TestAdminUsersList_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/users" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id":1,"username":"alice","email":"alice@example.com","role":"ROLE_USER"},
			{"id":2,"username":"root","role":"ROLE_ADMIN"}
		]`))
	}))
	defer server.Close()

	store := seededStore(t, "t1", "root", "ROLE_ADMIN")
	e := newTestEnv(t, server.URL, store, nil)
	var output bytes.Buffer

	if err := runAdminUsersList(e, &output); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(output.String(), "alice@example.com") {
		t.Errorf("expected user table, got: %s", output.String())
	}
}

func TestAdminBooksAdd_RequiresTitleAndAuthor(t *testing.T) {
	store := seededStore(t, "t1", "root", "ROLE_ADMIN")
	e := newTestEnv(t, "http://127.0.0.1:0", store, nil)

	err := runAdminBooksAdd(e, gateway.Book{Title: "Dune"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing author, got nil")
	}
	if err.Error() != "title and author are required" {
		t.Errorf("expected required-fields message, got: %s", err.Error())
	}
}

func TestAdminBooksQuantity_Success(t *testing.T) {
	var path, quantity string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		quantity = r.URL.Query().Get("quantity")
		w.Write([]byte(`{"success":true,"data":{"id":3,"quantity":7}}`))
	}))
	defer server.Close()

	store := seededStore(t, "t1", "root", "ROLE_ADMIN")
	e := newTestEnv(t, server.URL, store, nil)
	var output bytes.Buffer

	if err := runAdminBooksQuantity(e, "3", "7", &output); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if path != "/api/admin/books/3/quantity" || quantity != "7" {
		t.Errorf("unexpected request: %s?quantity=%s", path, quantity)
	}
	if !strings.Contains(output.String(), "Book 3 now has 7 copies") {
		t.Errorf("expected confirmation, got: %s", output.String())
	}
}

func TestAdminBooksQuantity_RejectsNegative(t *testing.T) {
	store := seededStore(t, "t1", "root", "ROLE_ADMIN")
	e := newTestEnv(t, "http://127.0.0.1:0", store, nil)

	err := runAdminBooksQuantity(e, "3", "-1", &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for negative quantity, got nil")
	}
}

func TestAdminUsersUpdate_MergesUnsetFields(t *testing.T) {
	var updated map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{"id":5,"username":"bob","email":"bob@example.com","role":"ROLE_USER"}`))
		case r.Method == http.MethodPut:
			json.NewDecoder(r.Body).Decode(&updated)
			w.Write([]byte(`{"success":true}`))
		}
	}))
	defer server.Close()

	store := seededStore(t, "t1", "root", "ROLE_ADMIN")
	e := newTestEnv(t, server.URL, store, nil)

	if err := runAdminUsersUpdate(e, "5", "", "ADMIN", &bytes.Buffer{}); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if updated["email"] != "bob@example.com" {
		t.Errorf("expected email preserved, got: %v", updated["email"])
	}
	if updated["role"] != "ADMIN" {
		t.Errorf("expected role updated, got: %v", updated["role"])
	}
}

func TestAdminBookingsReturn_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/bookings/9/return" || r.Method != http.MethodPut {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	store := seededStore(t, "t1", "root", "ROLE_ADMIN")
	e := newTestEnv(t, server.URL, store, nil)
	var output bytes.Buffer

	if err := runAdminBookingsReturn(e, "9", &output); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(output.String(), "Returned booking 9") {
		t.Errorf("expected confirmation, got: %s", output.String())
	}
}
