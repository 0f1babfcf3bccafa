// Copyright 2025 LexiLaw Authors
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
	// ErrInvalidSection indicates a LegalSection failed validation.
	ErrInvalidSection = errors.New("invalid legal section")

	// ErrEmptyCode indicates the Code field is empty.
	ErrEmptyCode = errors.New("section code cannot be empty")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("section title cannot be empty")

	// ErrInvalidSource indicates an invalid Source value.
	ErrInvalidSource = errors.New("invalid statute source")
)
