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


package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/jobagent"
	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/ai/openai"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/reindex"
	"github.com/poiesic/jobagent/storage/badger"
	"github.com/poiesic/jobagent/workflow"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "jobagent",
		Usage: "Hybrid retrieval agent for natural-language job search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a natural-language job search",
				ArgsUsage: "<request text>",
				Action:    searchCommand,
				Flags: append(agentFlags(),
					&cli.BoolFlag{
						Name:  "trace",
						Usage: "Print per-step workflow results",
					},
				),
			},
			{
				Name:   "seed",
				Usage:  "Ingest job records from a JSON-lines file (or built-in samples)",
				Action: seedCommand,
				Flags: append(agentFlags(),
					&cli.StringFlag{
						Name:    "src",
						Aliases: []string{"s"},
						Usage:   "Path to a JSON-lines file of job records",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to ingest in each batch",
						Value: 32,
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild embeddings for all indexed job records",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// agentFlags are the flags shared by every command that opens a full Agent.
func agentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
			Value:   "./jobs_db",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "chat-host",
			Usage: "Chat service host URL for planning, rewriting and reranking",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model name",
			Value: "qwen2.5:3b",
		},
	}
}

func openAgent(c *cli.Context) (*jobagent.Agent, error) {
	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithChatHost(c.String("chat-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatModel(c.String("chat-model")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return jobagent.NewAgent(c.String("db"), jobagent.WithAIConfig(cfg))
}

func searchCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("request text is required")
	}

	agent, err := openAgent(c)
	if err != nil {
		return fmt.Errorf("failed to open agent: %w", err)
	}
	defer agent.Close()

	trace, err := agent.Run(context.Background(), text)
	if err != nil {
		return fmt.Errorf("workflow planning failed: %w", err)
	}

	if c.Bool("trace") {
		printTrace(trace)
	}

	candidates, ok := trace.FinalCandidates()
	if !ok {
		fmt.Println("No results produced.")
		return nil
	}
	if len(candidates) == 0 {
		fmt.Println("No matching jobs found.")
		return nil
	}

	for i, cand := range candidates {
		printCandidate(i+1, cand)
	}
	return nil
}

func printTrace(trace *workflow.Trace) {
	fmt.Fprintf(os.Stderr, "Request: %s\n", trace.RequestText)
	for i, step := range trace.Steps {
		fmt.Fprintf(os.Stderr, "Step %d: %s [%s]", i+1, step.Tool, step.Output.Kind)
		if step.Failed() {
			fmt.Fprintf(os.Stderr, " error: %s", step.Output.Err)
		}
		fmt.Fprintln(os.Stderr)
	}
	fmt.Fprintln(os.Stderr)
}

func printCandidate(rank int, cand *core.Candidate) {
	record := cand.Record
	fmt.Printf("%2d. %s\n", rank, record.Title)
	fmt.Printf("    Location: %s", record.Location)
	if record.Experience != core.ExperienceUnspecified {
		fmt.Printf("  Experience: %d years", record.Experience)
	}
	fmt.Printf("  Score: %.4f\n", cand.FusedScore)
	if record.Skills != "" {
		fmt.Printf("    Skills: %s\n", record.Skills)
	}
}

// seedJob is the wire shape of one JSON-lines seed record.
type seedJob struct {
	JobId       string `json:"job_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Skills      string `json:"skills"`
	Experience  *int   `json:"experience"`
}

func (j *seedJob) toRecord() *core.JobRecord {
	experience := core.ExperienceUnspecified
	if j.Experience != nil {
		experience = *j.Experience
	}
	return &core.JobRecord{
		JobId:       j.JobId,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		Skills:      j.Skills,
		Experience:  experience,
	}
}

// recordsFromFile returns an iterator over JSON-lines job records in a file.
// Blank lines are skipped; a malformed line aborts the iteration.
func recordsFromFile(filename string) (iter.Seq2[*core.JobRecord, error], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(*core.JobRecord, error) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var job seedJob
			if err := json.Unmarshal([]byte(line), &job); err != nil {
				yield(nil, fmt.Errorf("line %d: %w", lineNo, err))
				return
			}
			if !yield(job.toRecord(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, err)
		}
	}, nil
}

func recordsFromSamples() iter.Seq2[*core.JobRecord, error] {
	return func(yield func(*core.JobRecord, error) bool) {
		for _, job := range sampleJobs {
			if !yield(job.toRecord(), nil) {
				return
			}
		}
	}
}

func seedCommand(c *cli.Context) error {
	agent, err := openAgent(c)
	if err != nil {
		return fmt.Errorf("failed to open agent: %w", err)
	}
	defer agent.Close()

	pipeline, err := agent.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	var source iter.Seq2[*core.JobRecord, error]
	if src := c.String("src"); src != "" {
		source, err = recordsFromFile(src)
		if err != nil {
			return fmt.Errorf("failed to open seed file: %w", err)
		}
	} else {
		source = recordsFromSamples()
	}

	batchSize := c.Int("batch-size")
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}

	ctx := context.Background()
	total := 0
	batch := make([]*core.JobRecord, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		accepted, err := pipeline.Ingest(ctx, batch...)
		if err != nil {
			return err
		}
		total += accepted
		batch = batch[:0]
		return nil
	}

	for record, err := range source {
		if err != nil {
			return fmt.Errorf("failed to read seed data: %w", err)
		}
		batch = append(batch, record)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return fmt.Errorf("ingestion failed: %w", err)
			}
		}
	}
	if err := flush(); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	pipeline.Wait()
	fmt.Fprintf(os.Stderr, "Ingested %d job records\n", total)
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	jobRepo, err := badger.NewJobRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create job repository: %w", err)
	}
	defer jobRepo.Close()

	indexRepo, err := badger.NewIndexRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create index repository: %w", err)
	}
	defer indexRepo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		// Chat services are not needed for reindexing
		ai.WithChatHost(c.String("embedding-host")),
		ai.WithChatModel("unused"),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reindexConfig := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		Dimensions:     aiConfig.EmbeddingDimensions,
	}
	if reindexConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reindexConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reindexConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reindexer, err := reindex.NewReindexer(jobRepo, indexRepo, embedder, reindexConfig, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create reindexer: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reindexer.Run(ctx); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
