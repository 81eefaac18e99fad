package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/masterphelps/killscale-api/internal/config"
)

// Client é o cliente de chat completions usado para gerar os insights de IA
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	IsConfigured() bool
}

type OpenAIClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (c *OpenAIClient) IsConfigured() bool {
	return c.cfg.OpenAI.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete envia o prompt e retorna o conteúdo da primeira escolha.
// A resposta é sempre solicitada em JSON (response_format json_object).
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.IsConfigured() {
		return "", errors.New("openai: api key não configurada")
	}

	reqBody := chatRequest{
		Model: c.cfg.OpenAI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:      c.cfg.OpenAI.MaxTokens,
		Temperature:    0.3,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "openai: erro ao serializar a requisição")
	}

	url := c.cfg.OpenAI.BaseURL + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "openai: erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "openai: erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "openai: erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("openai: status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", errors.Wrap(err, "openai: erro ao deserializar a resposta")
	}

	if chatResp.Error != nil {
		return "", errors.Errorf("openai: %s (%s)", chatResp.Error.Message, chatResp.Error.Type)
	}

	if len(chatResp.Choices) == 0 {
		return "", errors.New("openai: resposta sem choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
