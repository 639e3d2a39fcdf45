package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/poiesic/jobagent/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
			app := &cli.App{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: "info"},
				},
				Before: setupLogger,
				Action: func(c *cli.Context) error { return nil },
			}
			err := app.Run([]string{"jobagent", "--log-level", level})
			assert.NoError(t, err, "level %q should be accepted", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		err := app.Run([]string{"jobagent", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("debug level enables debug logging", func(t *testing.T) {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		err := app.Run([]string{"jobagent", "--log-level", "debug"})
		require.NoError(t, err)
		assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	})
}

func TestAgentFlagDefaults(t *testing.T) {
	flags := agentFlags()

	defaults := map[string]string{
		"db":              "./jobs_db",
		"embedding-host":  "http://localhost:11434/v1",
		"chat-host":       "http://localhost:11434/v1",
		"embedding-model": "embeddinggemma",
		"chat-model":      "qwen2.5:3b",
	}
	for name, want := range defaults {
		var found *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
				found = f
				break
			}
		}
		require.NotNil(t, found, "flag %q missing", name)
		assert.Equal(t, want, found.Value, "flag %q default", name)
	}
}

func TestSeedJobToRecord(t *testing.T) {
	t.Run("experience carried through", func(t *testing.T) {
		job := &seedJob{
			JobId:      "j-1",
			Title:      "Golang Developer",
			Location:   "Pune",
			Experience: intPtr(4),
		}
		record := job.toRecord()
		assert.Equal(t, "j-1", record.JobId)
		assert.Equal(t, 4, record.Experience)
	})

	t.Run("missing experience is unspecified", func(t *testing.T) {
		job := &seedJob{JobId: "j-2", Title: "Intern"}
		record := job.toRecord()
		assert.Equal(t, core.ExperienceUnspecified, record.Experience)
	})
}

func TestSampleJobsAreValid(t *testing.T) {
	require.NotEmpty(t, sampleJobs)
	seen := make(map[string]bool)
	for _, job := range sampleJobs {
		assert.NotEmpty(t, job.JobId)
		assert.NotEmpty(t, job.Title)
		assert.False(t, seen[job.JobId], "duplicate job id %q", job.JobId)
		seen[job.JobId] = true
	}
}
