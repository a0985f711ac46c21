package store

import (
	"jonasarte-backend/internal/models"
)

// Profile returns the singleton bio, seeding the placeholder on first run.
func (s *Store) Profile() (models.Profile, error) {
	s.profileMu.Lock()
	defer s.profileMu.Unlock()

	var profile models.Profile
	if err := s.readDocument(profileFile, &profile, seedProfile()); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// ReplaceProfile overwrites the stored document with p as given. No merge
// with prior fields: what the caller sends is exactly what persists.
func (s *Store) ReplaceProfile(p models.Profile) error {
	s.profileMu.Lock()
	defer s.profileMu.Unlock()
	return s.writeDocument(profileFile, p)
}
