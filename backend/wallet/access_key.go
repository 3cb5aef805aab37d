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

package wallet

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const fullAccess = "FullAccess"

type AccessKey struct {
	Nonce      *uint64    `json:"nonce,omitempty"`
	Permission Permission `json:"permission"`
}

// Permission is encoded as the string "FullAccess" when FunctionCall is nil,
// and as the function call permission object otherwise.
type Permission struct {
	FunctionCall *FunctionCallPermission
}

type FunctionCallPermission struct {
	ReceiverID  string   `json:"receiverId"`
	Allowance   string   `json:"allowance,omitempty"`
	MethodNames []string `json:"methodNames"`
}

// MarshalJSON implements json.Marshaler.
func (p Permission) MarshalJSON() ([]byte, error) {
	if p.FunctionCall == nil {
		return json.Marshal(fullAccess)
	}
	permission := *p.FunctionCall
	if permission.MethodNames == nil {
		permission.MethodNames = []string{}
	}
	return json.Marshal(permission)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Permission) UnmarshalJSON(data []byte) error {

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		err := json.Unmarshal(trimmed, &name)
		if err != nil {
			return err
		}
		if name != fullAccess {
			return fmt.Errorf("invalid permission name (%s)", name)
		}
		*p = Permission{}
		return nil
	}

	var permission FunctionCallPermission
	err := json.Unmarshal(trimmed, &permission)
	if err != nil {
		return fmt.Errorf("could not decode function call permission: %w", err)
	}
	*p = Permission{FunctionCall: &permission}

	return nil
}
