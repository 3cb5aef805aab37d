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

package chain

import (
	"context"
	"fmt"

	"github.com/optakt/near-batch/builder"
)

// Headers looks up the signing header of the next transaction sent with the
// given access key.
type Headers interface {
	Header(ctx context.Context, accountID string, publicKey string) (Header, error)
}

// Fixed always returns the same header, for callers that already know the
// nonce and block hash to use.
type Fixed Header

func (f Fixed) Header(_ context.Context, _ string, publicKey string) (Header, error) {
	header := Header(f)
	if header.PublicKey == "" {
		header.PublicKey = publicKey
	}
	return header, nil
}

// Payload is an unsigned transaction in its Borsh encoding, with the hash
// that identifies it once signed.
type Payload struct {
	SignerID string
	Nonce    uint64
	Hash     string
	Data     []byte
}

// Payloads encodes the transactions for signing with the given key. Headers
// are looked up once per signer; later transactions of the same signer use
// consecutive nonces.
func Payloads(ctx context.Context, txs []builder.Transaction, publicKey string, headers Headers) ([]Payload, error) {

	next := make(map[string]Header)
	payloads := make([]Payload, 0, len(txs))
	for index, tx := range txs {

		header, ok := next[tx.SignerID]
		if !ok {
			var err error
			header, err = headers.Header(ctx, tx.SignerID, publicKey)
			if err != nil {
				return nil, fmt.Errorf("could not get header (index: %d, signer: %s): %w", index, tx.SignerID, err)
			}
		}

		raw, err := Transaction(tx, header)
		if err != nil {
			return nil, fmt.Errorf("could not convert transaction (index: %d): %w", index, err)
		}
		data, err := Encode(raw)
		if err != nil {
			return nil, fmt.Errorf("could not encode transaction (index: %d): %w", index, err)
		}
		hash, err := Hash(raw)
		if err != nil {
			return nil, fmt.Errorf("could not hash transaction (index: %d): %w", index, err)
		}

		payload := Payload{
			SignerID: tx.SignerID,
			Nonce:    header.Nonce,
			Hash:     hash,
			Data:     data,
		}
		payloads = append(payloads, payload)

		header.Nonce++
		next[tx.SignerID] = header
	}

	return payloads, nil
}
