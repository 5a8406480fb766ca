// Package assistant wraps the generative-text collaborator behind the
// dashboard's "submit prompt, receive text or error string" contract.
package assistant

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Defaults target Gemini through its OpenAI-compatible endpoint; any
// compatible provider works by overriding base URL and model in config.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel   = "gemini-2.5-flash"
)

// systemPrompt frames every request. The team works in Spanish.
const systemPrompt = "Eres un asistente de estrategia de marca creativo. " +
	"Mantén un tono profesional pero inspirador. Responde siempre en Español. " +
	"Usa viñetas claras si es aplicable."

// Fallback texts shown to the user instead of an error value.
const (
	emptyReply    = "No se generó respuesta."
	errorReply    = "Lo siento, no pude generar ideas en este momento. Por favor verifica la API Key."
	disabledReply = "El asistente no está configurado."
)

// Client calls the generative-text collaborator.
type Client struct {
	ai    *openai.Client
	model string
	log   *zap.Logger
}

// New creates an assistant Client. An empty apiKey yields a disabled
// client whose Generate always returns the configuration notice.
func New(apiKey, baseURL, model string, logger *zap.Logger) *Client {
	if apiKey == "" {
		return &Client{log: logger}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		ai:    openai.NewClientWithConfig(cfg),
		model: model,
		log:   logger,
	}
}

// Generate submits the prompt and returns the reply text. Failures come
// back as a user-facing Spanish string, never as an error: the caller's
// only job is to display whatever this returns.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	if c.ai == nil {
		return disabledReply
	}

	resp, err := c.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Ayuda al equipo con la siguiente solicitud: " + prompt},
		},
	})
	if err != nil {
		c.log.Error("assistant request failed", zap.Error(err))
		return errorReply
	}
	if len(resp.Choices) == 0 {
		return emptyReply
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return emptyReply
	}
	return text
}
