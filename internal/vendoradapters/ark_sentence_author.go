package vendoradapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	arkmodel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"

	"numbers-dictation-platform/backend/internal/catalog"
	"numbers-dictation-platform/backend/internal/logging"
)

// ArkSentenceAuthorConfig carries the credentials and model endpoint for
// the Ark chat completion service.
type ArkSentenceAuthorConfig struct {
	APIKey string
	Model  string
}

// ArkSentenceAuthor authors carrier sentences through the Volcengine Ark
// chat completion API.
type ArkSentenceAuthor struct {
	client *arkruntime.Client
	model  string
	log    *logging.Logger
}

// NewArkSentenceAuthor builds an Ark-backed sentence author. Both the API
// key and the model endpoint ID are required.
func NewArkSentenceAuthor(cfg ArkSentenceAuthorConfig, log *logging.Logger) (*ArkSentenceAuthor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ark sentence author: api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ark sentence author: model is required")
	}
	if log == nil {
		log = logging.NewNop()
	}

	return &ArkSentenceAuthor{
		client: arkruntime.NewClientWithApiKey(cfg.APIKey),
		model:  cfg.Model,
		log:    log,
	}, nil
}

// Author requests one candidate sentence for the chunk sequence. The raw
// completion is trimmed but otherwise returned as-is; validation is the
// caller's job.
func (a *ArkSentenceAuthor) Author(ctx context.Context, chunks []string, blueprint catalog.SentenceBlueprint) (string, error) {
	if len(chunks) == 0 {
		return "", fmt.Errorf("ark sentence author: no chunks provided")
	}

	prompt := buildSentencePrompt(chunks, blueprint)

	req := arkmodel.ChatCompletionRequest{
		Model: a.model,
		Messages: []*arkmodel.ChatCompletionMessage{
			{
				Role: arkmodel.ChatMessageRoleUser,
				Content: &arkmodel.ChatCompletionMessageContent{
					StringValue: volcengine.String(prompt),
				},
			},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("ark chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == nil || resp.Choices[0].Message.Content.StringValue == nil {
		return "", fmt.Errorf("ark chat completion returned no content")
	}

	sentence := strings.TrimSpace(*resp.Choices[0].Message.Content.StringValue)
	a.log.Debug("authored candidate sentence", "blueprint", blueprint.ID, "length", len(sentence))
	return sentence, nil
}
