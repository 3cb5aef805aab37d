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
)

// Pending is the error for a submission that did not produce an outcome yet,
// for example because the signing wallet redirected to an external
// confirmation step. Index is the position of the pending transaction and
// Remaining the number of transactions that were not submitted after it.
type Pending struct {
	Description Description
	Index       int
	Remaining   int
}

// Error implements the error interface.
func (p Pending) Error() string {
	return fmt.Sprintf("transaction outcome pending (index: %d, remaining: %d): %s", p.Index, p.Remaining, p.Description)
}
