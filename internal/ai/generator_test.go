package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitflow-app/fitflow-server/internal/models"
)

func chatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":"nope"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
	}))
}

func customSettings(url string) models.AiSettings {
	return models.AiSettings{Provider: models.ProviderCustom, APIKey: "test-key", BaseURL: url}
}

func TestDraftParsesSuggestions(t *testing.T) {
	srv := chatServer(t, http.StatusOK,
		`[{"name":"Push-Up","category":"chest","muscleGroup":"Chest","suggestedSets":3,"suggestedReps":12}]`)
	defer srv.Close()

	g := NewGenerator(time.Second)
	got, err := g.Draft(customSettings(srv.URL), "upper body day", []string{"Push-Up", "Pull-Up"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.Suggestion{
		Name: "Push-Up", Category: "chest", MuscleGroup: "Chest",
		SuggestedSets: 3, SuggestedReps: 12,
	}, got[0])
}

func TestDraftStripsMarkdownFences(t *testing.T) {
	srv := chatServer(t, http.StatusOK,
		"```json\n[{\"name\":\"Plank\",\"category\":\"core\",\"suggestedSets\":3,\"suggestedReps\":1}]\n```")
	defer srv.Close()

	g := NewGenerator(time.Second)
	got, err := g.Draft(customSettings(srv.URL), "core", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Plank", got[0].Name)
}

func TestDraftRequiresAPIKey(t *testing.T) {
	g := NewGenerator(time.Second)
	_, err := g.Draft(models.AiSettings{Provider: models.ProviderOpenAI}, "x", nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestDraftCustomProviderRequiresBaseURL(t *testing.T) {
	g := NewGenerator(time.Second)
	_, err := g.Draft(models.AiSettings{Provider: models.ProviderCustom, APIKey: "k"}, "x", nil)
	assert.ErrorIs(t, err, ErrMissingBaseURL)
}

func TestDraftFailsOnHTTPError(t *testing.T) {
	srv := chatServer(t, http.StatusUnauthorized, "")
	defer srv.Close()

	g := NewGenerator(time.Second)
	_, err := g.Draft(customSettings(srv.URL), "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestDraftFailsOnUnparseableContent(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "Sure! Here's a great plan for you:")
	defer srv.Close()

	g := NewGenerator(time.Second)
	_, err := g.Draft(customSettings(srv.URL), "x", nil)
	assert.Error(t, err)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `[1]`, stripFences("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFences("```\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFences("[1]"))
}
