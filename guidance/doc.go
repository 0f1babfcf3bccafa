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


// Package guidance derives a fixed action checklist for a matched legal
// section.
//
// An ordered rule chain maps offence categories (recognized by keywords in
// the section title) to literal instruction sequences, with a generic
// fallback when nothing matches. The checklists are fixed text, never
// generated: the same section always produces the same steps.
//
// The package also carries the simplification seam: Simplifier is currently
// an identity pass-through used only when a section has no curated
// plain-language description.
package guidance
