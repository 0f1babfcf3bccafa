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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// CachedEmbedding is the value stored per corpus entry.
// The model name travels with the vector: vectors from different embedding
// models are not comparable, so a cache read under a different model must
// behave as a miss rather than poison the similarity scores.
type CachedEmbedding struct {
	Model  string
	Vector []float32
}

// SizeCachedEmbedding returns the serialized size of the entry in bytes.
func SizeCachedEmbedding(e *CachedEmbedding) int {
	size := varint.PositiveInt.Size(len(e.Model)) + len(e.Model)
	size += varint.PositiveInt.Size(len(e.Vector))
	size += 4 * len(e.Vector)
	return size
}

// MarshalCachedEmbedding serializes a CachedEmbedding to bytes.
func MarshalCachedEmbedding(e *CachedEmbedding) []byte {
	bs := make([]byte, SizeCachedEmbedding(e))
	n := varint.PositiveInt.Marshal(len(e.Model), bs)
	n += copy(bs[n:], e.Model)
	n += varint.PositiveInt.Marshal(len(e.Vector), bs[n:])
	for _, v := range e.Vector {
		n += raw.Float32.Marshal(v, bs[n:])
	}
	return bs
}

// UnmarshalCachedEmbedding deserializes a CachedEmbedding from bytes.
func UnmarshalCachedEmbedding(data []byte) (*CachedEmbedding, error) {
	modelLen, n, err := varint.PositiveInt.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: model length: %w", ErrSerializationFailed, err)
	}
	if n+modelLen > len(data) {
		return nil, fmt.Errorf("%w: truncated model name", ErrSerializationFailed)
	}
	model := string(data[n : n+modelLen])
	n += modelLen

	vectorLen, m, err := varint.PositiveInt.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: vector length: %w", ErrSerializationFailed, err)
	}
	n += m

	vector := make([]float32, vectorLen)
	for i := 0; i < vectorLen; i++ {
		v, m, err := raw.Float32.Unmarshal(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: vector element %d: %w", ErrSerializationFailed, i, err)
		}
		vector[i] = v
		n += m
	}

	return &CachedEmbedding{Model: model, Vector: vector}, nil
}
