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

package outcome

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Outcome is the final execution outcome of a transaction, as returned by the
// node once the transaction and all of its receipts were executed.
type Outcome struct {
	Status             Status    `json:"status"`
	TransactionOutcome Receipt   `json:"transaction_outcome"`
	ReceiptsOutcome    []Receipt `json:"receipts_outcome"`
}

// Hash returns the hash of the transaction that produced the outcome.
func (o Outcome) Hash() string {
	return o.TransactionOutcome.ID
}

// Receipt is the execution result of a single receipt or of the transaction
// conversion itself.
type Receipt struct {
	ID        string    `json:"id"`
	BlockHash string    `json:"block_hash"`
	Outcome   Execution `json:"outcome"`
}

// Execution holds the effects of executing a receipt.
type Execution struct {
	ExecutorID  string   `json:"executor_id"`
	Logs        []string `json:"logs"`
	ReceiptIDs  []string `json:"receipt_ids"`
	GasBurnt    uint64   `json:"gas_burnt"`
	TokensBurnt string   `json:"tokens_burnt"`
	Status      Status   `json:"status"`
}

// Status is the execution status of a transaction or receipt. At most one of
// its members is set. SuccessValue holds the base64-encoded return value and
// is empty, but not nil, when the call returned nothing. Unknown is set when
// the node has not executed the receipt yet.
type Status struct {
	SuccessValue     *string         `json:"SuccessValue,omitempty"`
	SuccessReceiptID *string         `json:"SuccessReceiptId,omitempty"`
	Failure          json.RawMessage `json:"Failure,omitempty"`
	Unknown          bool            `json:"-"`
}

// Failed reports whether the status carries a failure payload.
func (s Status) Failed() bool {
	return len(s.Failure) > 0 && !bytes.Equal(s.Failure, []byte("null"))
}

// UnmarshalJSON implements json.Unmarshaler. Besides the object forms, the
// node reports statuses it does not know yet as the plain string "Unknown".
func (s *Status) UnmarshalJSON(data []byte) error {

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		err := json.Unmarshal(trimmed, &name)
		if err != nil {
			return fmt.Errorf("could not decode status name: %w", err)
		}
		if name != "Unknown" {
			return fmt.Errorf("invalid status name (%s)", name)
		}
		*s = Status{Unknown: true}
		return nil
	}

	type plain Status
	var status plain
	err := json.Unmarshal(trimmed, &status)
	if err != nil {
		return fmt.Errorf("could not decode status: %w", err)
	}
	*s = Status(status)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	if s.Unknown {
		return []byte(`"Unknown"`), nil
	}
	type plain Status
	return json.Marshal(plain(s))
}
