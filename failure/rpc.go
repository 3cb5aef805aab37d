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

// RPC is the error returned by a remote node in answer to a request. Err
// optionally holds a sentinel error classifying the cause.
type RPC struct {
	Description Description
	Code        int
	Name        string
	Cause       string
	Err         error
}

// Error implements the error interface.
func (r RPC) Error() string {
	return fmt.Sprintf("remote failure (code: %d, name: %s, cause: %s): %s", r.Code, r.Name, r.Cause, r.Description)
}

// Unwrap returns the classifying error, if any.
func (r RPC) Unwrap() error {
	return r.Err
}
