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


// Package openai implements the ai.Embedder interface against any
// OpenAI-compatible embeddings endpoint via langchaingo. A locally served
// sentence-transformer model (e.g. all-minilm under Ollama) is the expected
// deployment; the hosted OpenAI API works unchanged.
package openai
