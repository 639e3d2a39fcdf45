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

import "errors"

// Domain validation errors
var (
	// ErrInvalidJobRecord indicates a JobRecord failed validation.
	ErrInvalidJobRecord = errors.New("invalid job record")

	// ErrEmptyJobId indicates the external JobId field is empty.
	ErrEmptyJobId = errors.New("job id cannot be empty")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidExperience indicates a negative experience value other than
	// the unspecified sentinel.
	ErrInvalidExperience = errors.New("experience must be non-negative or unspecified")

	// ErrInvalidExperienceRange indicates an experience constraint with Min > Max.
	ErrInvalidExperienceRange = errors.New("experience range min cannot exceed max")
)
