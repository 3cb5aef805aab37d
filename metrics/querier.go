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

package metrics

import (
	"context"

	"github.com/optakt/near-batch/models/view"
	"github.com/optakt/near-batch/outcome"
	"github.com/optakt/near-batch/transactor"
)

// Querier wraps a querier and records the duration and result of every view
// call.
type Querier struct {
	query transactor.Querier
	time  *Time
}

func NewQuerier(query transactor.Querier, time *Time) *Querier {
	q := Querier{
		query: query,
		time:  time,
	}
	return &q
}

func (q *Querier) View(ctx context.Context, req view.Request) (data []byte, err error) {
	done := q.time.Duration("view")
	defer func() { done(err) }()
	return q.query.View(ctx, req)
}

// Fetcher wraps a fetcher and records the duration and result of every status
// lookup.
type Fetcher struct {
	fetch transactor.Fetcher
	time  *Time
}

func NewFetcher(fetch transactor.Fetcher, time *Time) *Fetcher {
	f := Fetcher{
		fetch: fetch,
		time:  time,
	}
	return &f
}

func (f *Fetcher) Status(ctx context.Context, hash string, signerID string) (out outcome.Outcome, err error) {
	done := f.time.Duration("status")
	defer func() { done(err) }()
	return f.fetch.Status(ctx, hash, signerID)
}
