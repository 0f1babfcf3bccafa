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


// Package ai provides the embedding abstraction used for semantic search.
//
// The matcher and loader depend only on the Embedder interface, never on a
// concrete model client, so the expensive production embedder can be swapped
// for a deterministic fake in tests.
//
// Implementation sub-packages:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//     (Ollama, LocalAI, vLLM, OpenAI itself)
//   - ai/mock: deterministic test double
//
// Production constructors return the Embedder interface to enforce the
// abstraction; mock constructors return concrete types so tests can inject
// behavior and assert call counts.
package ai
