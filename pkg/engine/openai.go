package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"modelpickd/pkg/logging"
)

// OpenAIEngine talks to an OpenAI-compatible inference server (such as a
// local llama.cpp or vLLM endpoint) hosting the selected model.
type OpenAIEngine struct {
	// log is the associated logger.
	log logging.Logger
	// client is the OpenAI-compatible API client.
	client *openai.Client
	// options are the sampling parameters for chat completions.
	options Options
	// modelID is the currently loaded model, empty before Load succeeds.
	modelID string
}

// NewOpenAIEngine creates an engine bound to the OpenAI-compatible server at
// baseURL. The httpClient owns any request timeout.
func NewOpenAIEngine(log logging.Logger, httpClient *http.Client, baseURL string, options Options) *OpenAIEngine {
	config := openai.DefaultConfig("")
	config.BaseURL = baseURL
	config.HTTPClient = httpClient
	return &OpenAIEngine{
		log:     log,
		client:  openai.NewClientWithConfig(config),
		options: options,
	}
}

// Load verifies that the server exposes the given model and warms it with a
// single-token completion, which forces the server to page the weights in.
// Progress is reported before and after the warm-up.
func (e *OpenAIEngine) Load(ctx context.Context, modelID string, progress ProgressFunc) error {
	if progress == nil {
		progress = func(float64, string) {}
	}
	progress(0, fmt.Sprintf("Locating %s", modelID))

	models, err := e.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("listing engine models: %w", err)
	}
	found := false
	for _, model := range models.Models {
		if model.ID == modelID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("model %s not available on engine", modelID)
	}

	progress(0.5, fmt.Sprintf("Warming up %s", modelID))
	_, err = e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     modelID,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "ping"}},
		MaxTokens: 1,
	})
	if err != nil {
		return fmt.Errorf("warming up model: %w", err)
	}

	e.modelID = modelID
	progress(1, fmt.Sprintf("Ready: %s", modelID))
	e.log.Infof("Loaded model %s", modelID)
	return nil
}

// Chat implements Engine.Chat with a streaming completion.
func (e *OpenAIEngine) Chat(ctx context.Context, messages []Message, onToken func(token string)) (string, error) {
	if e.modelID == "" {
		return "", fmt.Errorf("no model loaded")
	}
	request := openai.ChatCompletionRequest{
		Model:       e.modelID,
		Temperature: e.options.Temperature,
		MaxTokens:   e.options.MaxTokens,
		Stream:      true,
	}
	if e.options.TopP > 0 {
		request.TopP = e.options.TopP
	}
	for _, message := range messages {
		request.Messages = append(request.Messages, openai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	stream, err := e.client.CreateChatCompletionStream(ctx, request)
	if err != nil {
		return "", fmt.Errorf("creating completion stream: %w", err)
	}
	defer stream.Close()

	response := ""
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return response, nil
		}
		if err != nil {
			return response, fmt.Errorf("receiving completion stream: %w", err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		token := chunk.Choices[0].Delta.Content
		if token == "" {
			continue
		}
		response += token
		if onToken != nil {
			onToken(token)
		}
	}
}
