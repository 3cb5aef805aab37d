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
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/optakt/near-batch/outcome"
)

// Global variables that can be used for testing. They are non-nil valid values for the types commonly needed
// to test near-batch components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericBytes = []byte(`test`)

	GenericHeight = uint64(42)

	GenericSigner = "alice.near"

	GenericReceiver = "token.near"

	GenericMethod = "ft_transfer"

	GenericPublicKey = "ed25519:4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw"

	GenericHash = "3qbR1eZRqXUWroWKKYhbDmR3FfqTHfqSU8zZSxtANzYh"

	GenericExecutionError = "Smart contract panicked: The account doesn't have enough balance"

	GenericFailure = json.RawMessage(`{"ActionError":{"index":0,"kind":{"FunctionCallError":{"ExecutionError":"Smart contract panicked: The account doesn't have enough balance"}}}}`)
)

// GenericOutcome returns a successful outcome whose return value is the JSON
// encoding of the given value.
func GenericOutcome(value interface{}) outcome.Outcome {
	data, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return GenericRawOutcome(data)
}

// GenericRawOutcome returns a successful outcome with the given raw return value.
func GenericRawOutcome(data []byte) outcome.Outcome {
	encoded := base64.StdEncoding.EncodeToString(data)
	o := outcome.Outcome{
		Status: outcome.Status{
			SuccessValue: &encoded,
		},
		TransactionOutcome: outcome.Receipt{
			ID:        GenericHash,
			BlockHash: GenericHash,
			Outcome: outcome.Execution{
				ExecutorID: GenericSigner,
			},
		},
		ReceiptsOutcome: GenericReceipts(2),
	}
	return o
}

// GenericFailedOutcome returns an outcome whose top-level status is a failure.
func GenericFailedOutcome() outcome.Outcome {
	o := GenericRawOutcome(nil)
	o.Status = outcome.Status{Failure: GenericFailure}
	return o
}

// GenericReceipts returns the given number of successful receipts.
func GenericReceipts(number int) []outcome.Receipt {
	empty := ""
	receipts := make([]outcome.Receipt, 0, number)
	for i := 0; i < number; i++ {
		receipt := outcome.Receipt{
			ID:        GenericHash,
			BlockHash: GenericHash,
			Outcome: outcome.Execution{
				ExecutorID:  GenericReceiver,
				Logs:        []string{},
				ReceiptIDs:  []string{},
				GasBurnt:    2428000000000,
				TokensBurnt: "242800000000000000000",
				Status:      outcome.Status{SuccessValue: &empty},
			},
		}
		receipts = append(receipts, receipt)
	}
	return receipts
}
