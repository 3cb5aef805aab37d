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

package metrics

import (
	"errors"

	"github.com/optakt/near-batch/models/near"
)

// Values of the result label.
const (
	ResultSuccess = "success"
	ResultPending = "pending"
	ResultFailure = "failure"
)

// Result maps an error to the value of the result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, near.ErrPending):
		return ResultPending
	default:
		return ResultFailure
	}
}
