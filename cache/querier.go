// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/OneOfOne/xxhash"
	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"

	"github.com/optakt/near-batch/models/view"
)

// Backend is the querier whose results are cached.
type Backend interface {
	View(ctx context.Context, req view.Request) ([]byte, error)
}

// Querier caches the results of view calls made at a pinned block, which can
// never change, and merges concurrent identical calls into one. Calls at a
// moving block reference are always passed through. It is safe for concurrent
// use.
type Querier struct {
	backend Backend
	cache   *ristretto.Cache
	group   singleflight.Group
}

// New creates a caching querier in front of the given backend.
func New(backend Backend, options ...func(*Config)) (*Querier, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	// Ristretto recommends keeping ten times as many counters as items in the
	// cache when full. Assuming an average result size of 1 kilobyte, this is
	// what we get.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.Size) / 1000 * 10,
		MaxCost:     int64(cfg.Size),
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize cache: %w", err)
	}

	q := Querier{
		backend: backend,
		cache:   cache,
	}

	return &q, nil
}

// View implements the querier interface of the transactor.
func (q *Querier) View(ctx context.Context, req view.Request) ([]byte, error) {

	if !req.Block.Pinned() {
		return q.backend.View(ctx, req)
	}

	key := Key(req)
	cached, ok := q.cache.Get(key)
	if ok {
		return copyBytes(cached.([]byte)), nil
	}

	result, err, _ := q.group.Do(strconv.FormatUint(key, 10), func() (interface{}, error) {
		data, err := q.backend.View(ctx, req)
		if err != nil {
			return nil, err
		}
		q.cache.Set(key, data, int64(len(data)))
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return copyBytes(result.([]byte)), nil
}

// Close stops the cache and releases its resources.
func (q *Querier) Close() {
	q.cache.Close()
}

// Key returns the cache key of a view request.
func Key(req view.Request) uint64 {
	h := xxhash.New64()
	_, _ = h.Write([]byte(req.ContractID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(req.MethodName))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(req.Args)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(req.Block.String()))
	return h.Sum64()
}

func copyBytes(data []byte) []byte {
	dup := make([]byte, len(data))
	copy(dup, data)
	return dup
}
