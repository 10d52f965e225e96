// Package vendoradapters holds the clients for the two external AI
// collaborators the dataset generator calls into: the LLM that authors
// carrier sentences and the TTS service that voices them. Both are behind
// interfaces; their output is never trusted without re-validation.
package vendoradapters

import (
	"context"
	"fmt"
	"strings"

	"numbers-dictation-platform/backend/internal/catalog"
)

// SentenceAuthor produces one candidate carrier sentence for a sequence of
// spoken chunks. Implementations are untrusted producers: the caller always
// re-validates the sentence before using it.
type SentenceAuthor interface {
	Author(ctx context.Context, chunks []string, blueprint catalog.SentenceBlueprint) (string, error)
}

// buildSentencePrompt renders the authoring instruction for a chunk
// sequence and its situational blueprint.
func buildSentencePrompt(chunks []string, blueprint catalog.SentenceBlueprint) string {
	numberText := strings.Join(chunks, " ")

	return fmt.Sprintf(`You are a native French speaker helping to create a listening exercise
for a language-learning application.

TASK:
Write ONE short, natural sentence in spoken French (France)
that naturally incorporates the following number sequence:

"%s"

CONTEXT:
- Situation: %s
- Description: %s
- Tone: %s

RULES (STRICT):
1. Use the number sequence EXACTLY as provided above.
   Do NOT change, reorder, or rephrase any part of it.
2. Do NOT add any other numbers, digits, or numeric expressions.
3. The sentence must sound natural in everyday spoken French.
4. Do not create a too long sentence (1-2 sentences).
5. Use the number sequence exactly once.
6. Output ONLY the French sentence. No explanations, no formatting.

Double-check your output before returning it.`, numberText, blueprint.Context, blueprint.Description, blueprint.Tone)
}
