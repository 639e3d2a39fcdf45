// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package jobagent

import (
	"context"
	"log/slog"

	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/ai/openai"
	"github.com/poiesic/jobagent/ingestion"
	"github.com/poiesic/jobagent/search"
	"github.com/poiesic/jobagent/storage"
	"github.com/poiesic/jobagent/storage/badger"
	"github.com/poiesic/jobagent/workflow"
)

// Agent bundles the stores, the AI provider, and the workflow machinery
// behind a single handle. It is the embedding point for applications: open
// an agent, ingest jobs, run free-text requests.
type Agent struct {
	backend   *badger.Backend
	jobRepo   storage.JobRepository
	indexRepo storage.IndexRepository
	provider  ai.Provider
	logger    *slog.Logger
}

// AgentOption configures an Agent.
type AgentOption func(*agentOptions)

type agentOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
}

// WithAIConfig overrides the AI service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) AgentOption {
	return func(o *agentOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithProvider supplies a pre-built AI provider instead of constructing one
// from configuration. Useful for tests.
func WithProvider(provider ai.Provider) AgentOption {
	return func(o *agentOptions) {
		o.provider = provider
	}
}

// NewAgent opens the database at filePath and wires up the full stack.
func NewAgent(filePath string, opts ...AgentOption) (*Agent, error) {
	options := &agentOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	jobRepo, err := badger.NewJobRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	indexRepo, err := badger.NewIndexRepository(backend)
	if err != nil {
		jobRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			indexRepo.Close()
			jobRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Agent{
		backend:   backend,
		jobRepo:   jobRepo,
		indexRepo: indexRepo,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

// Close shuts down the provider, repositories, and backend.
func (a *Agent) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.indexRepo.Close(); err != nil {
		a.logger.Error("error closing index repository", "err", err)
		return err
	}
	if err := a.jobRepo.Close(); err != nil {
		a.logger.Error("error closing job repository", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (a *Agent) JobRepository() storage.JobRepository {
	return a.jobRepo
}

func (a *Agent) IndexRepository() storage.IndexRepository {
	return a.indexRepo
}

func (a *Agent) Provider() ai.Provider {
	return a.provider
}

func (a *Agent) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(a.jobRepo, a.indexRepo, a.provider, opts...)
}

func (a *Agent) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.jobRepo, a.indexRepo, a.provider, opts...)
}

// NewExecutor builds a workflow executor with the full tool set wired to
// this agent's stores and provider.
func (a *Agent) NewExecutor(opts ...workflow.ExecutorOption) (*workflow.Executor, error) {
	searcher, err := a.NewSearcher()
	if err != nil {
		return nil, err
	}
	return workflow.NewExecutor([]workflow.Tool{
		workflow.NewRewriteTool(a.provider.QueryRewriter()),
		workflow.NewJobSearchTool(searcher),
		workflow.NewRerankTool(a.provider.Reranker()),
	}, opts...), nil
}

// Run plans a workflow for the free-text request and executes it.
// Planning failure is the only error: once a plan exists, execution always
// yields a trace, with any step failures recorded inside it.
func (a *Agent) Run(ctx context.Context, text string) (*workflow.Trace, error) {
	toolPlan, err := a.provider.Planner().PlanWorkflow(ctx, text)
	if err != nil {
		return nil, err
	}

	executor, err := a.NewExecutor()
	if err != nil {
		return nil, err
	}

	plan := workflow.PlanFromToolPlan(toolPlan)
	return executor.Execute(ctx, plan, text), nil
}
