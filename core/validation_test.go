package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobRecord(t *testing.T) {
	valid := func() *JobRecord {
		return &JobRecord{
			JobId:      "job-1",
			Title:      "Data Engineer",
			Experience: 3,
		}
	}

	t.Run("valid record", func(t *testing.T) {
		require.NoError(t, ValidateJobRecord(valid()))
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidateJobRecord(nil)
		assert.ErrorIs(t, err, ErrInvalidJobRecord)
	})

	t.Run("empty job id", func(t *testing.T) {
		record := valid()
		record.JobId = ""
		err := ValidateJobRecord(record)
		assert.ErrorIs(t, err, ErrEmptyJobId)
	})

	t.Run("empty title", func(t *testing.T) {
		record := valid()
		record.Title = ""
		err := ValidateJobRecord(record)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("unspecified experience is valid", func(t *testing.T) {
		record := valid()
		record.Experience = ExperienceUnspecified
		require.NoError(t, ValidateJobRecord(record))
	})

	t.Run("negative experience", func(t *testing.T) {
		record := valid()
		record.Experience = -3
		err := ValidateJobRecord(record)
		assert.ErrorIs(t, err, ErrInvalidExperience)
	})
}

func TestValidateExperience(t *testing.T) {
	t.Run("nil constraint is valid", func(t *testing.T) {
		require.NoError(t, ValidateExperience(nil))
	})

	t.Run("valid range", func(t *testing.T) {
		require.NoError(t, ValidateExperience(&Experience{Min: 3, Max: 5}))
	})

	t.Run("min greater than max", func(t *testing.T) {
		err := ValidateExperience(&Experience{Min: 5, Max: 3})
		assert.ErrorIs(t, err, ErrInvalidExperienceRange)
	})

	t.Run("negative min", func(t *testing.T) {
		err := ValidateExperience(&Experience{Min: -1, Max: 3})
		assert.ErrorIs(t, err, ErrInvalidExperienceRange)
	})
}
