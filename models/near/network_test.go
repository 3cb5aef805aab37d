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

package near_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/near-batch/models/near"
)

func TestLookup(t *testing.T) {
	t.Run("well-known network", func(t *testing.T) {
		t.Parallel()

		got := near.Lookup(near.Testnet)

		assert.Equal(t, "https://rpc.testnet.near.org", got.RPC)
		assert.Equal(t, "https://testnet.mynearwallet.com", got.WalletURL)
	})

	t.Run("custom endpoint", func(t *testing.T) {
		t.Parallel()

		got := near.Lookup("http://node:3030")

		assert.Equal(t, near.Network{RPC: "http://node:3030"}, got)
	})
}

func TestNetwork_SignURL(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		network := near.Lookup(near.Testnet)

		got, err := network.SignURL([][]byte{{1, 2, 3}, {4}}, "https://app.example/done")
		require.NoError(t, err)

		u, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "testnet.mynearwallet.com", u.Host)
		assert.Equal(t, "/sign", u.Path)
		assert.Equal(t, "AQID,BA==", u.Query().Get("transactions"))
		assert.Equal(t, "https://app.example/done", u.Query().Get("callbackUrl"))
	})

	t.Run("without callback", func(t *testing.T) {
		t.Parallel()

		network := near.Network{WalletURL: "https://wallet.example/"}

		got, err := network.SignURL([][]byte{{1, 2, 3}}, "")
		require.NoError(t, err)

		assert.Equal(t, "https://wallet.example/sign?transactions=AQID", got)
	})

	t.Run("handles network without wallet", func(t *testing.T) {
		t.Parallel()

		_, err := near.Lookup(near.Localnet).SignURL([][]byte{{1}}, "")

		assert.ErrorIs(t, err, near.ErrNotFound)
	})
}
