package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-stageval/pkg/catalog"
)

func TestCheckStagiaireFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stagiaires/check/A123456" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(catalog.Stagiaire{ID: 7, CIN: "A123456", Nom: "Alaoui", Prenom: "Ahmed"})
	}))
	defer srv.Close()

	client := catalog.New(catalog.WithBaseURL(srv.URL))
	got, err := client.CheckStagiaire(context.Background(), "A123456")
	if err != nil {
		t.Fatalf("check stagiaire: %v", err)
	}
	want := catalog.Stagiaire{ID: 7, CIN: "A123456", Nom: "Alaoui", Prenom: "Ahmed"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	if got.FullName() != "Ahmed Alaoui" {
		t.Fatalf("full name = %q", got.FullName())
	}
}

func TestCheckStagiaireNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := catalog.New(catalog.WithBaseURL(srv.URL))
	_, err := client.CheckStagiaire(context.Background(), "ZZZ")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCheckTuteurServerFaultIsNotConfirmedAbsence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := catalog.New(catalog.WithBaseURL(srv.URL))
	_, err := client.CheckTuteur(context.Background(), "T123456")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, catalog.ErrNotFound) {
		t.Fatal("a 500 must not read as confirmed absence")
	}
	var status *catalog.StatusError
	if !errors.As(err, &status) || status.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("want wrapped 500 StatusError, got %v", err)
	}
}

func TestCheckTuteurTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := catalog.New(catalog.WithBaseURL(srv.URL))
	_, err := client.CheckTuteur(context.Background(), "T123456")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if errors.Is(err, catalog.ErrNotFound) {
		t.Fatal("a transport failure must not read as confirmed absence")
	}
	var status *catalog.StatusError
	if errors.As(err, &status) {
		t.Fatal("transport failure should not carry a status code")
	}
}

func TestStagiaireCRUDPaths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		switch r.Method {
		case http.MethodPost, http.MethodPut:
			var in catalog.Stagiaire
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			in.ID = 42
			json.NewEncoder(w).Encode(in)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			json.NewEncoder(w).Encode([]catalog.Stagiaire{{ID: 1}})
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	client := catalog.New(catalog.WithBaseURL(srv.URL))

	created, err := client.CreateStagiaire(ctx, catalog.Stagiaire{CIN: "B789012", Nom: "Benani"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("created id = %d, want assigned 42", created.ID)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/stagiaires" {
		t.Fatalf("create hit %s %s", gotMethod, gotPath)
	}

	if _, err := client.UpdateStagiaire(ctx, 42, created); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/stagiaires/42" {
		t.Fatalf("update hit %s %s", gotMethod, gotPath)
	}

	if err := client.DeleteStagiaire(ctx, 42); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/stagiaires/42" {
		t.Fatalf("delete hit %s %s", gotMethod, gotPath)
	}

	if _, err := client.ListStagiaires(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/api/stagiaires" {
		t.Fatalf("list hit %s %s", gotMethod, gotPath)
	}
}
