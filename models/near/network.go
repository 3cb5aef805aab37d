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

package near

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// Names of the well-known networks.
const (
	Mainnet  = "mainnet"
	Testnet  = "testnet"
	Localnet = "localnet"
)

// Network describes how to reach the nodes of a network and the wallet that
// signs transactions for it.
type Network struct {
	RPC       string
	WalletURL string
}

// Networks maps the well-known network names to their public endpoints.
var Networks = map[string]Network{
	Mainnet: {
		RPC:       "https://rpc.mainnet.near.org",
		WalletURL: "https://app.mynearwallet.com",
	},
	Testnet: {
		RPC:       "https://rpc.testnet.near.org",
		WalletURL: "https://testnet.mynearwallet.com",
	},
	Localnet: {
		RPC: "http://127.0.0.1:3030",
	},
}

// Lookup returns the network with the given name, or a network using the
// name itself as RPC endpoint when it is not a well-known one.
func Lookup(name string) Network {
	network, ok := Networks[name]
	if ok {
		return network
	}
	return Network{RPC: name}
}

// SignURL returns the wallet page that asks the user to sign and send the
// given Borsh encoded transactions, redirecting to the callback URL when done.
func (n Network) SignURL(transactions [][]byte, callbackURL string) (string, error) {

	if n.WalletURL == "" {
		return "", fmt.Errorf("no wallet for network (rpc: %s): %w", n.RPC, ErrNotFound)
	}

	u, err := url.Parse(n.WalletURL)
	if err != nil {
		return "", fmt.Errorf("could not parse wallet URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/sign"

	encoded := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		encoded = append(encoded, base64.StdEncoding.EncodeToString(tx))
	}
	query := url.Values{}
	query.Set("transactions", strings.Join(encoded, ","))
	if callbackURL != "" {
		query.Set("callbackUrl", callbackURL)
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}
