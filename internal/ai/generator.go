// Package ai drafts workout plans by calling an OpenAI-compatible
// chat-completions endpoint. Any transport, authentication, or parse error
// aborts the whole draft; nothing is committed from a partial response.
package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fitflow-app/fitflow-server/internal/models"
)

var (
	ErrMissingAPIKey  = errors.New("ai api key is not configured")
	ErrMissingBaseURL = errors.New("custom provider requires a base url")
	ErrEmptyResponse  = errors.New("ai provider returned no choices")
)

var providerBaseURLs = map[models.AiProvider]string{
	models.ProviderOpenAI:      "https://api.openai.com/v1",
	models.ProviderDeepSeek:    "https://api.deepseek.com/v1",
	models.ProviderSiliconFlow: "https://api.siliconflow.cn/v1",
}

var providerDefaultModels = map[models.AiProvider]string{
	models.ProviderOpenAI:      "gpt-4o-mini",
	models.ProviderDeepSeek:    "deepseek-chat",
	models.ProviderSiliconFlow: "Qwen/Qwen2.5-7B-Instruct",
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generator turns free text into structured workout suggestions.
type Generator struct {
	client *http.Client
}

func NewGenerator(timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Generator{client: &http.Client{Timeout: timeout}}
}

const systemPrompt = `You are a professional fitness coach. Based on the user's request, draft a workout plan as a list of exercises with suggested sets and reps.
Prefer exercise names from this existing library where they fit: %s.
Create a sensible new name only when nothing in the library matches.
Valid categories: chest, back, legs, core, arms, shoulders, cardio, full_body, custom.
IMPORTANT: Return ONLY a valid JSON array, no markdown formatting. Example:
[{"name":"Push-Up","category":"chest","muscleGroup":"Chest / Triceps","suggestedSets":3,"suggestedReps":10}]`

// Draft requests a plan for prompt. existingNames are passed to the model as
// a dedup hint so it reuses library exercises where possible.
func (g *Generator) Draft(settings models.AiSettings, prompt string, existingNames []string) ([]models.Suggestion, error) {
	if settings.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = providerBaseURLs[settings.Provider]
	}
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	model := settings.ModelName
	if model == "" {
		model = providerDefaultModels[settings.Provider]
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(systemPrompt, strings.Join(existingNames, ", "))},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("encode ai request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, strings.TrimRight(baseURL, "/")+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build ai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+settings.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ai provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode ai response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	content := stripFences(chat.Choices[0].Message.Content)

	var suggestions []models.Suggestion
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		return nil, fmt.Errorf("parse ai suggestions: %w", err)
	}
	return suggestions, nil
}

// stripFences removes surrounding markdown code fences some providers emit
// despite being told not to.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) < 3 {
		return content
	}
	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
