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

package failure

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ReceiptFailure describes a single receipt that failed during execution.
// Index is the position of the receipt within the receipt list of its outcome.
type ReceiptFailure struct {
	Index int         `json:"index"`
	Kind  FailureKind `json:"kind"`
}

// FailureKind holds the execution error message reported by the node.
type FailureKind struct {
	ExecutionError string `json:"ExecutionError"`
}

// Error implements the error interface.
func (r ReceiptFailure) Error() string {
	return fmt.Sprintf("receipt %d failed: %s", r.Index, r.Kind.ExecutionError)
}

// Receipts is the error that aggregates all receipt failures found across a
// list of outcomes. It unwraps to each of its failures, so errors.As finds a
// single ReceiptFailure through it.
type Receipts struct {
	Failures []ReceiptFailure
	merr     *multierror.Error
}

// NewReceipts aggregates the given receipt failures.
func NewReceipts(failures ...ReceiptFailure) Receipts {
	var merr *multierror.Error
	for _, failure := range failures {
		merr = multierror.Append(merr, failure)
	}
	if merr != nil {
		merr.ErrorFormat = formatReceipts
	}
	r := Receipts{
		Failures: failures,
		merr:     merr,
	}
	return r
}

// Error implements the error interface.
func (r Receipts) Error() string {
	merr := r.multi()
	if merr == nil {
		return "no receipt failures"
	}
	return merr.Error()
}

// WrappedErrors returns every receipt failure as an error.
func (r Receipts) WrappedErrors() []error {
	return r.multi().WrappedErrors()
}

// Unwrap gives access to the receipt failures one after the other.
func (r Receipts) Unwrap() error {
	merr := r.multi()
	if merr == nil {
		return nil
	}
	return merr.Unwrap()
}

func (r Receipts) multi() *multierror.Error {
	if r.merr != nil || len(r.Failures) == 0 {
		return r.merr
	}
	return NewReceipts(r.Failures...).merr
}

func formatReceipts(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}
	return fmt.Sprintf("%d receipt(s) failed: %s", len(errs), strings.Join(parts, "; "))
}
