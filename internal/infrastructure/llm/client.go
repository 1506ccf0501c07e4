package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-advisor/internal/config"
	"career-advisor/internal/domain/advice"

	"github.com/rs/zerolog"
	gopenai "github.com/sashabaranov/go-openai"
)

var errEmptyCompletion = errors.New("empty completion")

type Client struct {
	client      *gopenai.Client
	model       string
	temperature float32
	timeout     time.Duration
	logger      zerolog.Logger
}

var _ advice.Advisor = (*Client)(nil)

func NewClient(cfg config.AIConfig, logger zerolog.Logger) *Client {
	aiConfig := gopenai.DefaultConfig(cfg.APIKey)
	aiConfig.BaseURL = cfg.BaseURL

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		client:      gopenai.NewClientWithConfig(aiConfig),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     timeout,
		logger:      logger.With().Str("component", "llm").Logger(),
	}
}

func (c *Client) GetCareerAdvice(ctx context.Context, p advice.Profile, question string) advice.Result {
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, gopenai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: advice.SystemInstruction},
			{Role: gopenai.ChatMessageRoleUser, Content: advice.BuildCareerPrompt(p, question)},
		},
	})
	if err != nil {
		c.logFailure(err, start)
		return advice.Failed(err)
	}

	if len(resp.Choices) == 0 {
		c.logFailure(errEmptyCompletion, start)
		return advice.Failed(errEmptyCompletion)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		c.logFailure(errEmptyCompletion, start)
		return advice.Failed(errEmptyCompletion)
	}

	c.logger.Debug().
		Str("model", c.model).
		Dur("latency", time.Since(start)).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("advice generated")

	return advice.Succeeded(text)
}

func (c *Client) logFailure(err error, start time.Time) {
	ev := c.logger.Warn().Err(err).Str("model", c.model).Dur("latency", time.Since(start))

	var apiErr *gopenai.APIError
	if errors.As(err, &apiErr) {
		ev = ev.Int("status", apiErr.HTTPStatusCode)
	}
	var reqErr *gopenai.RequestError
	if errors.As(err, &reqErr) {
		ev = ev.Int("status", reqErr.HTTPStatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		ev = ev.Bool("timeout", true)
	}

	ev.Msg("advice request failed")
}
