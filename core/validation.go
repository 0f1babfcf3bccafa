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

import "fmt"

// ValidateSection validates a LegalSection according to domain rules.
//
// Validation rules:
//   - Code must not be empty
//   - Title must not be empty
//   - Source must be a known statute book
//
// NOT validated (legitimately empty for sparse source data):
//   - Description, SimplifiedDescription, SearchText
//   - SectionNumber (some raw records carry no identifier)
func ValidateSection(section *LegalSection) error {
	if section == nil {
		return fmt.Errorf("%w: section is nil", ErrInvalidSection)
	}

	if section.Code == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSection, ErrEmptyCode)
	}

	if section.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSection, ErrEmptyTitle)
	}

	if err := ValidateSource(section.Source); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSection, err)
	}

	return nil
}

// ValidateSource validates that a Source has a valid value.
func ValidateSource(source Source) error {
	if source != SourceIPC && source != SourceCrPC {
		return fmt.Errorf("%w: value %d", ErrInvalidSource, source)
	}
	return nil
}
