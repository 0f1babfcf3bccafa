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


// Package storage provides the optional persistent embedding cache.
//
// The corpus is static and fully indexed at startup; without a cache every
// start embeds the whole corpus again, which takes seconds against a local
// model and real money against a hosted one. The VectorCache stores each
// section's embedding keyed by the content hash of its search text, so an
// unchanged corpus restarts without touching the embedder while any edited
// section misses the cache and is re-embedded transparently.
//
// Public constructors return interfaces (storage.VectorCache) so the matcher
// never couples to a concrete backend; the only backend provided is BadgerDB
// (storage/badger), which also offers an in-memory mode for tests.
package storage
