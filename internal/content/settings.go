package content

import (
	"sync"

	"github.com/openletters/community/internal/domain"
	"github.com/openletters/community/internal/localstore"
)

const siteSettingsKey = "site-settings"

// SettingsStore serves the site settings document, falling back to the
// defaults until an admin saves a change.
type SettingsStore struct {
	mu      sync.RWMutex
	store   *localstore.Store
	current domain.SiteSettings
}

func NewSettingsStore(store *localstore.Store) *SettingsStore {
	s := &SettingsStore{store: store, current: domain.DefaultSiteSettings()}
	store.Get(siteSettingsKey, &s.current)
	return s
}

func (s *SettingsStore) Get() domain.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update replaces the whole document, as the settings form does.
func (s *SettingsStore) Update(settings domain.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = settings
	s.store.Set(siteSettingsKey, settings)
}
