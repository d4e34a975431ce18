package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"angadBack/internal/models"
)

func TestParseListFilter(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/admin/reclamations?page=2&size=5&sort=date_update&statut=EN_COURS&service=IT&q=reseau", nil)

	filter, err := parseListFilter(r)
	if err != nil {
		t.Fatalf("parseListFilter: %v", err)
	}
	if filter.Page != 2 || filter.Size != 5 {
		t.Fatalf("unexpected paging %d/%d", filter.Page, filter.Size)
	}
	if filter.Sort != "date_update" || filter.Query != "reseau" {
		t.Fatalf("unexpected sort/query %q/%q", filter.Sort, filter.Query)
	}
	if filter.Statut == nil || *filter.Statut != models.StatutEnCours {
		t.Fatal("expected statut filter EN_COURS")
	}
	if filter.Service == nil || *filter.Service != models.ServiceIT {
		t.Fatal("expected service filter IT")
	}
}

func TestParseListFilterEmpty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/admin/reclamations", nil)

	filter, err := parseListFilter(r)
	if err != nil {
		t.Fatalf("parseListFilter: %v", err)
	}
	if filter.Statut != nil || filter.Service != nil {
		t.Fatal("expected no filters by default")
	}
	if filter.Page != 0 || filter.Size != 0 {
		t.Fatal("expected zero paging before service defaults apply")
	}
}

func TestParseListFilterRejectsUnknownValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/admin/reclamations?statut=CLOSED", nil)
	if _, err := parseListFilter(r); !errors.Is(err, models.ErrInvalidStatut) {
		t.Fatalf("expected ErrInvalidStatut, got %v", err)
	}

	r = httptest.NewRequest("GET", "/api/admin/reclamations?service=PLOMBERIE", nil)
	if _, err := parseListFilter(r); !errors.Is(err, models.ErrInvalidService) {
		t.Fatalf("expected ErrInvalidService, got %v", err)
	}
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{models.ErrReclamationNotFound, 404},
		{models.ErrUserNotFound, 404},
		{models.ErrOutsideService, 403},
		{models.ErrAccessDenied, 403},
		{models.ErrNotDemandeur, 403},
		{models.ErrInvalidStatut, 400},
		{models.ErrInvalidCredentials, 401},
		{models.ErrDuplicateUsername, 409},
		{errors.New("boom"), 500},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		respondError(w, c.err)
		if w.Code != c.code {
			t.Fatalf("respondError(%v): expected %d, got %d", c.err, c.code, w.Code)
		}
	}
}
