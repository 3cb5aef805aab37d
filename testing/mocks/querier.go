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

package mocks

import (
	"context"
	"testing"

	"github.com/optakt/near-batch/models/view"
)

type Querier struct {
	ViewFunc func(ctx context.Context, req view.Request) ([]byte, error)
}

func BaselineQuerier(t *testing.T) *Querier {
	t.Helper()

	q := Querier{
		ViewFunc: func(context.Context, view.Request) ([]byte, error) {
			return []byte(`"ok"`), nil
		},
	}

	return &q
}

func (q *Querier) View(ctx context.Context, req view.Request) ([]byte, error) {
	return q.ViewFunc(ctx, req)
}
