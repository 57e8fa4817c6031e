package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitflow-app/fitflow-server/internal/models"
)

func TestSetAiSettingsRejectsUnknownProvider(t *testing.T) {
	svc := newTestService(t)

	err := svc.SetAiSettings(models.AiSettings{Provider: "gemini"})
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestSetAiSettingsKeepsStoredKeyWhenBlank(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SetAiSettings(models.AiSettings{
		Provider: models.ProviderDeepSeek,
		APIKey:   "sk-secret",
	}))

	// a client that round-trips the redacted settings it fetched sends an
	// empty key field; that must not erase the stored key
	require.NoError(t, svc.SetAiSettings(models.AiSettings{
		Provider:  models.ProviderDeepSeek,
		ModelName: "deepseek-chat",
	}))

	got := svc.AiSettings()
	assert.Equal(t, "sk-secret", got.APIKey)
	assert.Equal(t, "deepseek-chat", got.ModelName)
}

func TestSetAiSettingsReplacesKeyWhenProvided(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SetAiSettings(models.AiSettings{Provider: models.ProviderOpenAI, APIKey: "old"}))
	require.NoError(t, svc.SetAiSettings(models.AiSettings{Provider: models.ProviderOpenAI, APIKey: "new"}))

	assert.Equal(t, "new", svc.AiSettings().APIKey)
}

func TestSetThemeValidates(t *testing.T) {
	svc := newTestService(t)

	assert.ErrorIs(t, svc.SetTheme("sepia"), ErrInvalidTheme)
	require.NoError(t, svc.SetTheme("dark"))
	assert.Equal(t, "dark", svc.Theme())
}
