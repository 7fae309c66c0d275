package mentorhub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInsertStudent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/students" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		var rec map[string]any
		if err := json.Unmarshal(body, &rec); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}
		if rec["Name"] != "Asha" || rec["eMail"] != "asha@iitb.ac.in" {
			t.Fatalf("unexpected payload %s", body)
		}
		if _, present := rec["College"]; present {
			t.Fatalf("unset field serialized: %s", body)
		}
		w.Write([]byte(`{"ID":11,"Name":"Asha","eMail":"asha@iitb.ac.in"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	created, err := c.InsertStudent(context.Background(), Student{
		Name:  String("Asha"),
		EMail: String("asha@iitb.ac.in"),
	})
	if err != nil {
		t.Fatalf("InsertStudent: %v", err)
	}
	if created.ID == nil || *created.ID != 11 {
		t.Fatalf("unexpected created student %+v", created)
	}
}

func TestUpdateStudent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/students/42" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"Branch":"CSE"}` {
			t.Fatalf("unexpected payload %s", body)
		}
		w.Write([]byte(`{"ID":42,"Branch":"CSE"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	updated, err := c.UpdateStudent(context.Background(), 42, Student{Branch: String("CSE")})
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}
	if updated.ID == nil || *updated.ID != 42 || updated.Branch == nil || *updated.Branch != "CSE" {
		t.Fatalf("unexpected updated student %+v", updated)
	}
}

func TestDeleteStudents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/students" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `[1,2,3]` {
			t.Fatalf("unexpected payload %s", body)
		}
		w.Write([]byte(`[{"ID":1},{"ID":2},{"ID":3}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	deleted, err := c.DeleteStudents(context.Background(), []int{1, 2, 3})
	if err != nil {
		t.Fatalf("DeleteStudents: %v", err)
	}
	if len(deleted) != 3 {
		t.Fatalf("expected 3 deleted rows, got %d", len(deleted))
	}
}

func TestDeleteStudentsNilIDsSendsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != `[]` {
			t.Fatalf("expected empty JSON list, got %s", body)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.DeleteStudents(context.Background(), nil); err != nil {
		t.Fatalf("DeleteStudents: %v", err)
	}
}
