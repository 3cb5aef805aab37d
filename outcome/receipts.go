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

	"github.com/optakt/near-batch/failure"
)

// actionFailure is the subset of the node's failure payload needed to extract
// the message of a failed function call.
type actionFailure struct {
	ActionError *struct {
		Kind struct {
			FunctionCallError *struct {
				ExecutionError *string `json:"ExecutionError"`
			} `json:"FunctionCallError"`
		} `json:"kind"`
	} `json:"ActionError"`
}

// CollectReceiptErrors scans all receipts of all given outcomes and returns a
// failure.Receipts error listing every failed one, or nil if none failed.
func CollectReceiptErrors(outcomes ...Outcome) error {

	var failures []failure.ReceiptFailure
	for _, o := range outcomes {
		for index, receipt := range o.ReceiptsOutcome {
			status := receipt.Outcome.Status
			if !status.Failed() {
				continue
			}
			rf := failure.ReceiptFailure{
				Index: index,
				Kind: failure.FailureKind{
					ExecutionError: message(status.Failure),
				},
			}
			failures = append(failures, rf)
		}
	}

	if len(failures) == 0 {
		return nil
	}

	return failure.NewReceipts(failures...)
}

// message extracts the execution error of a failed function call, falling
// back to the compact JSON of the whole payload for other failures.
func message(payload json.RawMessage) string {
	var af actionFailure
	err := json.Unmarshal(payload, &af)
	if err == nil && af.ActionError != nil {
		call := af.ActionError.Kind.FunctionCallError
		if call != nil && call.ExecutionError != nil {
			return *call.ExecutionError
		}
	}
	return compact(payload)
}

func compact(payload json.RawMessage) string {
	var buf bytes.Buffer
	err := json.Compact(&buf, payload)
	if err != nil {
		return string(payload)
	}
	return buf.String()
}
