package workout

import (
	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/store"
)

// AiSettings returns the locally stored generator configuration.
func (s *Service) AiSettings() models.AiSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aiSettings
}

// SetAiSettings stores the generator configuration locally. It is never
// included in a remote push. A blank incoming key keeps the stored one, so
// clients can round-trip the redacted settings they fetched without erasing
// the key.
func (s *Service) SetAiSettings(cfg models.AiSettings) error {
	switch cfg.Provider {
	case models.ProviderOpenAI, models.ProviderDeepSeek, models.ProviderSiliconFlow, models.ProviderCustom:
	default:
		return ErrInvalidProvider
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.APIKey == "" {
		cfg.APIKey = s.aiSettings.APIKey
	}
	s.aiSettings = cfg
	return s.st.Save(store.KeyAiSettings, s.aiSettings)
}

func (s *Service) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme persists the presentation theme. The visual effect itself lives in
// whatever client renders the data.
func (s *Service) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return s.st.Save(store.KeyTheme, s.theme)
}
