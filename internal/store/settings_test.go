package store

import (
	"testing"
)

func TestUpdateSettings_Partial(t *testing.T) {
	s := newTestStore(t)

	name := "Gelateria da Praça"
	theme := "pink"
	got, err := s.UpdateSettings(SettingsUpdate{ShopName: &name, ThemeColor: &theme})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ShopName != name || got.ThemeColor != theme {
		t.Errorf("updated = %+v", got)
	}

	defaults := DefaultSettings()
	if got.UserName != defaults.UserName || got.UserRole != defaults.UserRole {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdateSettings_BadTheme(t *testing.T) {
	s := newTestStore(t)
	before := s.Settings()

	name := "Nome Novo"
	theme := "chartreuse"
	if _, err := s.UpdateSettings(SettingsUpdate{ShopName: &name, ThemeColor: &theme}); err != ErrInvalidTheme {
		t.Fatalf("err = %v, want ErrInvalidTheme", err)
	}
	// rejection happens before any field is merged
	if s.Settings() != before {
		t.Errorf("settings mutated: %+v", s.Settings())
	}
}

func TestUpdateSettings_Persists(t *testing.T) {
	db := newTestDB(t)
	s, err := Open(db)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	role := "Sócio"
	if _, err := s.UpdateSettings(SettingsUpdate{UserRole: &role}); err != nil {
		t.Fatalf("update: %v", err)
	}

	s2, err := Open(db)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if s2.Settings().UserRole != role {
		t.Errorf("reloaded role = %q, want %q", s2.Settings().UserRole, role)
	}
}
