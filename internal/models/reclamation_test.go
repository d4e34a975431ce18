package models

import (
	"errors"
	"testing"
)

func TestParseServiceType(t *testing.T) {
	for _, s := range []string{"IT", "EQUIPEMENT", "INFRASTRUCTURE"} {
		if _, err := ParseServiceType(s); err != nil {
			t.Fatalf("ParseServiceType(%s): %v", s, err)
		}
	}
	if _, err := ParseServiceType("it"); !errors.Is(err, ErrInvalidService) {
		t.Fatalf("expected ErrInvalidService for lowercase input, got %v", err)
	}
	if _, err := ParseServiceType(""); !errors.Is(err, ErrInvalidService) {
		t.Fatalf("expected ErrInvalidService for empty input, got %v", err)
	}
}

func TestParseStatut(t *testing.T) {
	for _, s := range []string{"OUVERT", "EN_COURS", "RESOLUE", "NON_RESOLUE"} {
		if _, err := ParseStatut(s); err != nil {
			t.Fatalf("ParseStatut(%s): %v", s, err)
		}
	}
	if _, err := ParseStatut("FERMEE"); !errors.Is(err, ErrInvalidStatut) {
		t.Fatalf("expected ErrInvalidStatut, got %v", err)
	}
}

func TestStatutIsTerminal(t *testing.T) {
	if StatutOuvert.IsTerminal() || StatutEnCours.IsTerminal() {
		t.Fatal("OUVERT and EN_COURS must not be terminal")
	}
	if !StatutResolue.IsTerminal() || !StatutNonResolue.IsTerminal() {
		t.Fatal("RESOLUE and NON_RESOLUE must be terminal")
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"DEMANDEUR", "TECHNICIEN", "ADMIN"} {
		if _, err := ParseRole(s); err != nil {
			t.Fatalf("ParseRole(%s): %v", s, err)
		}
	}
	if _, err := ParseRole("MANAGER"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
