package mentorhub

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInsertProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/projects" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"Title":"Mesh Networking","Skills":"Go, LoRa"}` {
			t.Fatalf("unexpected payload %s", body)
		}
		w.Write([]byte(`{"ProjectID":21,"Title":"Mesh Networking","Skills":"Go, LoRa"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	created, err := c.InsertProject(context.Background(), Project{
		Title:  String("Mesh Networking"),
		Skills: String("Go, LoRa"),
	})
	if err != nil {
		t.Fatalf("InsertProject: %v", err)
	}
	if created.ProjectID == nil || *created.ProjectID != 21 {
		t.Fatalf("unexpected created project %+v", created)
	}
}

func TestUpdateProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/projects/21" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"ProjectID":21,"Milestones":"prototype; field test"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	updated, err := c.UpdateProject(context.Background(), 21, Project{
		Milestones: String("prototype; field test"),
	})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.Milestones == nil || *updated.Milestones != "prototype; field test" {
		t.Fatalf("unexpected updated project %+v", updated)
	}
}

func TestDeleteProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/projects" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `[21,22]` {
			t.Fatalf("unexpected payload %s", body)
		}
		w.Write([]byte(`[{"ProjectID":21},{"ProjectID":22}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	deleted, err := c.DeleteProjects(context.Background(), []int{21, 22})
	if err != nil {
		t.Fatalf("DeleteProjects: %v", err)
	}
	if len(deleted) != 2 {
		t.Fatalf("expected 2 deleted rows, got %d", len(deleted))
	}
}
