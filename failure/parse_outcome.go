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

// ParseOutcome is the error for an execution outcome that does not carry a
// success value, typically because the transaction failed.
type ParseOutcome struct {
	Description Description
	Failure     string
}

// Error implements the error interface.
func (p ParseOutcome) Error() string {
	if p.Failure == "" {
		return fmt.Sprintf("could not parse outcome: %s", p.Description)
	}
	return fmt.Sprintf("could not parse outcome (failure: %s): %s", p.Failure, p.Description)
}
