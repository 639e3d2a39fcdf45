package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/jobagent/ai"
)

// Planner implements ai.Planner using OpenAI-compatible chat APIs.
type Planner struct {
	chat   *chatClient
	logger *slog.Logger
}

// NewPlanner creates a new workflow planner using the provided configuration.
//
// Returns ai.Planner interface to enforce abstraction.
func NewPlanner(config *ai.Config) (ai.Planner, error) {
	chat, err := newChatClient(config)
	if err != nil {
		return nil, err
	}
	return &Planner{
		chat:   chat,
		logger: slog.Default().With("component", "openai-planner"),
	}, nil
}

// PlanWorkflow converts a free-text request into a raw ordered tool plan.
// The plan is untrusted model output; steps with an empty tool name are
// dropped here, and all remaining validation happens in the executor layer.
func (p *Planner) PlanWorkflow(ctx context.Context, text string) (*ai.ToolPlan, error) {
	systemPrompt := fmt.Sprintf(plannerPromptTemplate, plannerResponseSchema)

	var plan ai.ToolPlan
	if err := p.chat.generateJSON(ctx, p.logger, systemPrompt, text, &plan); err != nil {
		return nil, err
	}

	steps := make([]ai.PlanStep, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		step.Tool = strings.TrimSpace(step.Tool)
		if step.Tool == "" {
			p.logger.Warn("dropping plan step without a tool name")
			continue
		}
		steps = append(steps, step)
	}
	plan.Steps = steps

	p.logger.Debug("planned workflow", "steps", len(plan.Steps))
	return &plan, nil
}
