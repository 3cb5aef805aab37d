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

package builder

import (
	"github.com/optakt/near-batch/codec"
)

// Defaults applied to function calls when the caller does not override them.
const (
	// DefaultDeposit attaches no tokens to the call.
	DefaultDeposit = "0"

	// DefaultGas is 30 Tgas, enough for most simple contract methods.
	DefaultGas = "30000000000000"
)

// CallConfig holds the optional parameters of a function call.
type CallConfig struct {
	Deposit string
	Gas     string
	Encoder codec.Encoder
}

// DefaultCallConfig is the configuration every function call starts from.
var DefaultCallConfig = CallConfig{
	Deposit: DefaultDeposit,
	Gas:     DefaultGas,
	Encoder: codec.JSON{},
}

// WithDeposit sets the amount of base units attached to the call.
func WithDeposit(amount string) func(*CallConfig) {
	return func(cfg *CallConfig) {
		cfg.Deposit = amount
	}
}

// WithGas sets the gas budget of the call.
func WithGas(gas string) func(*CallConfig) {
	return func(cfg *CallConfig) {
		cfg.Gas = gas
	}
}

// WithEncoder sets the encoder used to serialize structured arguments.
func WithEncoder(enc codec.Encoder) func(*CallConfig) {
	return func(cfg *CallConfig) {
		cfg.Encoder = enc
	}
}
