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


package core

import "fmt"

// ValidateJobRecord validates a JobRecord according to domain rules.
//
// Validation rules:
//   - JobId must not be empty
//   - Title must not be empty
//   - Experience must be non-negative or ExperienceUnspecified
//
// NOT validated (populated by the ingestion pipeline):
//   - Vector (can be empty until the record is embedded)
//   - Id (derived from JobId at ingestion time)
func ValidateJobRecord(record *JobRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidJobRecord)
	}

	if record.JobId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJobRecord, ErrEmptyJobId)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidJobRecord, ErrEmptyTitle)
	}

	if record.Experience < 0 && record.Experience != ExperienceUnspecified {
		return fmt.Errorf("%w: %w", ErrInvalidJobRecord, ErrInvalidExperience)
	}

	return nil
}

// ValidateExperience validates an experience constraint.
func ValidateExperience(exp *Experience) error {
	if exp == nil {
		return nil // No constraint is valid
	}
	if exp.Min > exp.Max {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidExperienceRange, exp.Min, exp.Max)
	}
	if exp.Min < 0 {
		return fmt.Errorf("%w: min %d", ErrInvalidExperienceRange, exp.Min)
	}
	return nil
}
