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

package transactor

import (
	"time"

	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/models/view"
)

// Config holds the settings of the transactor.
type Config struct {
	AwaitInterval time.Duration
	AwaitTimeout  time.Duration
}

// DefaultConfig polls for pending outcomes starting at one second, for at most
// two minutes.
var DefaultConfig = Config{
	AwaitInterval: time.Second,
	AwaitTimeout:  2 * time.Minute,
}

// WithAwaitInterval sets the initial interval between two status lookups.
func WithAwaitInterval(interval time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.AwaitInterval = interval
	}
}

// WithAwaitTimeout sets the maximum time spent waiting for an outcome.
func WithAwaitTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.AwaitTimeout = timeout
	}
}

// SendConfig holds the optional parameters of a submission.
type SendConfig struct {
	ReceiptErrors bool
	Decoder       codec.Decoder
}

// WithReceiptErrors makes the submission fail when any receipt of any outcome
// failed, even if the transactions themselves succeeded.
func WithReceiptErrors() func(*SendConfig) {
	return func(cfg *SendConfig) {
		cfg.ReceiptErrors = true
	}
}

// WithDecoder sets the decoder used for the return value of Send.
func WithDecoder(dec codec.Decoder) func(*SendConfig) {
	return func(cfg *SendConfig) {
		cfg.Decoder = dec
	}
}

// ViewConfig holds the optional parameters of a view call.
type ViewConfig struct {
	Encoder codec.Encoder
	Decoder codec.Decoder
	Block   view.Block
}

// WithViewEncoder sets the encoder used for the call arguments.
func WithViewEncoder(enc codec.Encoder) func(*ViewConfig) {
	return func(cfg *ViewConfig) {
		cfg.Encoder = enc
	}
}

// WithViewDecoder sets the decoder used for the returned value.
func WithViewDecoder(dec codec.Decoder) func(*ViewConfig) {
	return func(cfg *ViewConfig) {
		cfg.Decoder = dec
	}
}

// WithBlock sets the block the view call is executed at.
func WithBlock(block view.Block) func(*ViewConfig) {
	return func(cfg *ViewConfig) {
		cfg.Block = block
	}
}
