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


// Package search ranks the static legal corpus against a live query by
// semantic similarity.
//
// A Matcher batch-embeds the whole corpus exactly once at construction and
// holds the vectors in memory, index-aligned with the sections. After that
// the matcher is read-only: concurrent Search calls share the corpus, the
// vector cache and the embedder without locking. If the corpus changes the
// process must restart.
//
// On threshold choice: matching plain natural language against formal
// statutory language is cross-domain, which yields systematically lower
// cosine scores than same-domain matching. A permissive threshold in the
// 0.2-0.25 range avoids false negatives at the cost of some low-confidence
// hits, which the caller mitigates by displaying the numeric score.
package search
