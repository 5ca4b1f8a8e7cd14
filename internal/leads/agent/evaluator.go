// Package agent provides AI-assisted lead evaluation. The evaluator asks a
// chat model for a second, independent quality score with a one-sentence
// justification, and normalizes the free-text reply into the same bounded
// range the rule-based scorer uses.
package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/ports"
	"leaddesk_backend/platform/ai"
	"leaddesk_backend/platform/logger"
)

const (
	// Sampling settings keep answers terse but not fully deterministic.
	evaluationTemperature = 0.7
	evaluationMaxTokens   = 60

	systemPrompt = "You are a sales lead evaluation assistant."

	fallbackScore     = 50
	fallbackReasoning = "Error in AI evaluation - using default score"

	minScore = 1
	maxScore = 100
)

// scorePattern locates the first standalone 1-3 digit run in the reply.
var scorePattern = regexp.MustCompile(`\b\d{1,3}\b`)

// Evaluation is the advisory AI verdict on a lead.
type Evaluation struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// Evaluator obtains advisory lead scores from a chat model.
type Evaluator struct {
	chat ports.ChatModel
	log  *logger.Logger
}

// NewEvaluator creates an evaluator backed by the given chat model.
func NewEvaluator(chat ports.ChatModel, log *logger.Logger) *Evaluator {
	return &Evaluator{chat: chat, log: log}
}

// Evaluate asks the model to score the lead. It is total: any provider
// failure or unparseable reply degrades to an in-range fallback result, never
// to an error. Callers wanting a timeout apply it through ctx.
func (e *Evaluator) Evaluate(ctx context.Context, rec domain.Record) Evaluation {
	reply, err := e.chat.Complete(ctx, ai.ChatRequest{
		System:      systemPrompt,
		Prompt:      buildPrompt(rec),
		Temperature: evaluationTemperature,
		MaxTokens:   evaluationMaxTokens,
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		if e.log != nil {
			e.log.Error("ai lead evaluation failed", "error", err)
		}
		return Evaluation{Score: fallbackScore, Reasoning: fallbackReasoning}
	}

	// A reply without a digit run still carries the model's (default-scored)
	// reasoning; only a failed call replaces the text itself.
	return Evaluation{
		Score:     extractScore(reply),
		Reasoning: reply,
	}
}

// buildPrompt embeds the lead's fields in the evaluation request. Absent
// fields render as empty values; the model is expected to weigh that.
func buildPrompt(rec domain.Record) string {
	name, _ := domain.Field(rec.Name)
	email, _ := domain.Field(rec.Email)
	company, _ := domain.Field(rec.Company)

	return fmt.Sprintf(`Analyze this sales lead and provide a quality score between 1-100.
Consider these factors in your evaluation:
- Name completeness and professionalism
- Email domain quality
- Company reputation (based on name)
- Current engagement status

Lead Details:
Name: %s
Email: %s
Company: %s
Status: %s

Provide only the numerical score and brief 1-sentence justification.
Example: "85 - Strong professional email and established company"`,
		name, email, company, rec.Status)
}

// extractScore pulls the first 1-3 digit run out of the reply and clamps it
// to the valid range. No digits found yields the neutral default.
func extractScore(text string) int {
	match := scorePattern.FindString(text)
	if match == "" {
		return fallbackScore
	}

	score, err := strconv.Atoi(match)
	if err != nil {
		return fallbackScore
	}

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
