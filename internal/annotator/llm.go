package annotator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"notekeep/internal/richtext"
)

const (
	summarySystemPrompt = "You are a helpful assistant that summarizes notes. Provide a concise, one-sentence summary of the following note content."
	tagsSystemPrompt    = "You are a helpful assistant that suggests tags for notes. Based on the note content, suggest 3-5 relevant tags as a single, comma-separated string (e.g., \"work, project, important\"). Do not add any extra text or explanations."
)

// LLMAnnotator calls an OpenAI-compatible chat completion endpoint. The
// base URL is configurable so the same client works against Groq.
type LLMAnnotator struct {
	client    *openai.Client
	model     string
	maxTokens int
	maxTags   int
	logger    *zap.Logger
}

func NewLLMAnnotator(apiKey, baseURL, model string, maxTokens, maxTags int, logger *zap.Logger) *LLMAnnotator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &LLMAnnotator{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
		maxTags:   maxTags,
		logger:    logger,
	}
}

func (a *LLMAnnotator) Summarize(ctx context.Context, content string) (string, error) {
	plain := richtext.PlainText(content)
	if len(strings.TrimSpace(plain)) < MinInputLength {
		return TooShortSummary, nil
	}

	response, err := a.complete(ctx, summarySystemPrompt, plain, a.maxTokens)
	if err != nil {
		a.logger.Error("Failed to generate summary", zap.Error(err))
		return "", fmt.Errorf("error generating summary: %w", err)
	}
	return strings.TrimSpace(response), nil
}

func (a *LLMAnnotator) SuggestTags(ctx context.Context, content string) ([]string, error) {
	plain := richtext.PlainText(content)
	if len(strings.TrimSpace(plain)) < MinInputLength {
		return []string{}, nil
	}

	response, err := a.complete(ctx, tagsSystemPrompt, plain, 20)
	if err != nil {
		a.logger.Error("Failed to suggest tags", zap.Error(err))
		return nil, fmt.Errorf("error suggesting tags: %w", err)
	}
	return parseTagList(response, a.maxTags), nil
}

func (a *LLMAnnotator) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: user},
			},
			MaxTokens: maxTokens,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// parseTagList splits the model's comma-separated reply into normalized
// tags, capped at maxTags.
func parseTagList(response string, maxTags int) []string {
	parts := strings.Split(response, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	if maxTags > 0 && len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}
