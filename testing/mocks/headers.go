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

	"github.com/optakt/near-batch/backend/chain"
)

type Headers struct {
	HeaderFunc func(ctx context.Context, accountID string, publicKey string) (chain.Header, error)
}

func BaselineHeaders(t *testing.T) *Headers {
	t.Helper()

	h := Headers{
		HeaderFunc: func(_ context.Context, _ string, publicKey string) (chain.Header, error) {
			header := chain.Header{
				PublicKey: publicKey,
				Nonce:     GenericHeight,
				BlockHash: GenericHash,
			}
			return header, nil
		},
	}

	return &h
}

func (h *Headers) Header(ctx context.Context, accountID string, publicKey string) (chain.Header, error) {
	return h.HeaderFunc(ctx, accountID, publicKey)
}
