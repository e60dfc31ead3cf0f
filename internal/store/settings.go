package store

import "gelato-pos/internal/models"

// Settings returns the current shop record.
func (s *Store) Settings() models.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SettingsUpdate carries a field-level edit; nil fields stay untouched.
type SettingsUpdate struct {
	ShopName   *string
	ThemeColor *string
	UserName   *string
	UserRole   *string
}

// UpdateSettings merges the non-nil fields into the singleton record. An
// unknown theme color rejects the whole update.
func (s *Store) UpdateSettings(upd SettingsUpdate) (models.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.ThemeColor != nil && !models.ValidThemeColor(*upd.ThemeColor) {
		return models.AppSettings{}, ErrInvalidTheme
	}
	if upd.ShopName != nil {
		s.settings.ShopName = *upd.ShopName
	}
	if upd.ThemeColor != nil {
		s.settings.ThemeColor = *upd.ThemeColor
	}
	if upd.UserName != nil {
		s.settings.UserName = *upd.UserName
	}
	if upd.UserRole != nil {
		s.settings.UserRole = *upd.UserRole
	}
	if err := s.saveSettings(); err != nil {
		return models.AppSettings{}, err
	}
	return s.settings, nil
}
