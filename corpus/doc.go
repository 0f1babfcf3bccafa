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


// Package corpus loads and normalizes the statutory corpus.
//
// The upstream data are two JSON exports with loosely typed, partially
// missing fields (a tabular export, so "NaN" and "None" appear as literal
// strings). The loader resolves every field to a total value exactly once:
// missing-value markers become empty strings, absent titles and punishments
// become documented per-statute defaults, and each record is folded into an
// immutable core.LegalSection with a synthesized search text for embedding.
//
// Loading never fails on a malformed record. A record with no textual
// content at all still yields a section; it just carries no semantic signal
// and will never be retrieved.
package corpus
