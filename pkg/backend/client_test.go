package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goliatone/go-stageval/pkg/backend"
)

func TestCreateStageReturnsAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/stages" {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var in backend.Stage
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode stage: %v", err)
		}
		if in.Description != "Chatbot" || in.Entreprise != "ACME" {
			t.Fatalf("stage payload = %+v", in)
		}
		in.ID = 99
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	client := backend.New(backend.WithBaseURL(srv.URL))
	id, err := client.CreateStage(context.Background(), backend.Stage{
		Description: "Chatbot",
		Objectif:    "Ship it",
		Entreprise:  "ACME",
	})
	if err != nil {
		t.Fatalf("create stage: %v", err)
	}
	if id != 99 {
		t.Fatalf("stage id = %d, want 99", id)
	}
}

func TestCreateStageRejectsMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	client := backend.New(backend.WithBaseURL(srv.URL))
	if _, err := client.CreateStage(context.Background(), backend.Stage{}); err == nil {
		t.Fatal("expected error when response carries no id")
	}
}

func TestCreateStageSurfacesServerFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := backend.New(backend.WithBaseURL(srv.URL))
	_, err := client.CreateStage(context.Background(), backend.Stage{})
	var status *backend.StatusError
	if !errors.As(err, &status) || status.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("want 500 StatusError, got %v", err)
	}
}

func TestCreatePeriodeWireFormat(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/periodes" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode periode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := backend.New(backend.WithBaseURL(srv.URL))
	err := client.CreatePeriode(context.Background(), backend.Periode{
		StagiaireID: 7,
		StageID:     99,
		DateDebut:   "2026-02-01",
		DateFin:     "2026-07-31",
	})
	if err != nil {
		t.Fatalf("create periode: %v", err)
	}
	want := map[string]any{
		"stagiaireId": float64(7),
		"stageId":     float64(99),
		"date_debut":  "2026-02-01",
		"date_fin":    "2026-07-31",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("periode wire format (-want +got):\n%s", diff)
	}
}

func TestGetAppreciationCompositePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/appreciations/7/99/3" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(backend.AppreciationRecord{
			ID: backend.AppreciationID{PeriodeStagiaireID: 7, PeriodeStageID: 99, TuteurID: 3},
		})
	}))
	defer srv.Close()

	client := backend.New(backend.WithBaseURL(srv.URL))
	record, err := client.GetAppreciation(context.Background(), 7, 99, 3)
	if err != nil {
		t.Fatalf("get appreciation: %v", err)
	}
	if record.ID.PeriodeStageID != 99 {
		t.Fatalf("record id = %+v", record.ID)
	}
}

func TestListAppreciations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]backend.AppreciationRecord{
			{ID: backend.AppreciationID{PeriodeStagiaireID: 1, PeriodeStageID: 2, TuteurID: 3}},
			{ID: backend.AppreciationID{PeriodeStagiaireID: 4, PeriodeStageID: 5, TuteurID: 6}},
		})
	}))
	defer srv.Close()

	client := backend.New(backend.WithBaseURL(srv.URL))
	records, err := client.ListAppreciations(context.Background())
	if err != nil {
		t.Fatalf("list appreciations: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}
