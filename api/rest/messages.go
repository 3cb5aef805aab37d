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

package rest

import (
	"encoding/json"

	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/outcome"
)

// CompileRequest holds a batch of wallet transactions. When a public key is
// given, the response also carries the Borsh payloads to sign with it. Nonce
// and block hash are looked up from the node unless both are set.
type CompileRequest struct {
	Transactions []wallet.Transaction `json:"transactions"`
	PublicKey    string               `json:"publicKey,omitempty"`
	Nonce        *uint64              `json:"nonce,omitempty"`
	BlockHash    string               `json:"blockHash,omitempty"`
}

// CompileResponse holds the normalized transactions, with defaults applied,
// and their encoded payloads if requested.
type CompileResponse struct {
	Transactions []wallet.Transaction `json:"transactions"`
	Payloads     []Payload            `json:"payloads,omitempty"`
}

// Payload is a transaction ready to be signed. Data is base64 encoded.
type Payload struct {
	SignerID string `json:"signerId"`
	Nonce    uint64 `json:"nonce"`
	Hash     string `json:"hash"`
	Data     []byte `json:"data"`
}

// ViewRequest is a read-only contract call. At most one of the block
// selectors may be set.
type ViewRequest struct {
	ContractID string          `json:"contractId"`
	MethodName string          `json:"methodName"`
	Args       json.RawMessage `json:"args,omitempty"`
	Finality   string          `json:"finality,omitempty"`
	Checkpoint string          `json:"checkpoint,omitempty"`
	Height     *uint64         `json:"height,omitempty"`
	Hash       string          `json:"hash,omitempty"`
	Raw        bool            `json:"raw,omitempty"`
}

// ViewResponse holds the return value of a view call: the JSON result, or the
// base64 encoded bytes for raw requests.
type ViewResponse struct {
	Result json.RawMessage `json:"result,omitempty"`
	Data   []byte          `json:"data,omitempty"`
}

// OutcomeResponse holds the final outcome of a transaction and the failures
// of its receipts, if any.
type OutcomeResponse struct {
	Outcome  outcome.Outcome          `json:"outcome"`
	Failures []failure.ReceiptFailure `json:"failures,omitempty"`
}
