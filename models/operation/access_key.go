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

package operation

// AccessKey describes the permission granted to a public key. Nonce is only
// set when the initial key nonce should be overridden.
type AccessKey struct {
	Nonce      *uint64
	Permission Permission
}

// Permission is full access when FunctionCall is nil.
type Permission struct {
	FunctionCall *FunctionCallPermission
}

// FunctionCallPermission restricts a key to calling the given methods on the
// given receiver. An empty method list allows every method, and an empty
// allowance means the key can spend without limit.
type FunctionCallPermission struct {
	ReceiverID  string
	MethodNames []string
	Allowance   string
}

// FullAccess returns an access key with full access permission.
func FullAccess() AccessKey {
	return AccessKey{}
}

// FunctionCallAccess returns an access key restricted to function calls on
// the given receiver. Duplicate method names are dropped, keeping the first
// occurrence.
func FunctionCallAccess(receiverID string, allowance string, methods ...string) AccessKey {

	seen := make(map[string]struct{}, len(methods))
	names := make([]string, 0, len(methods))
	for _, method := range methods {
		_, ok := seen[method]
		if ok {
			continue
		}
		seen[method] = struct{}{}
		names = append(names, method)
	}

	permission := FunctionCallPermission{
		ReceiverID:  receiverID,
		MethodNames: names,
		Allowance:   allowance,
	}

	key := AccessKey{
		Permission: Permission{
			FunctionCall: &permission,
		},
	}

	return key
}

// WithNonce returns a copy of the access key using the given nonce.
func (a AccessKey) WithNonce(nonce uint64) AccessKey {
	a = a.Copy()
	a.Nonce = &nonce
	return a
}

// IsFullAccess reports whether the key has full access permission.
func (a AccessKey) IsFullAccess() bool {
	return a.Permission.FunctionCall == nil
}

// Copy returns a deep copy of the access key.
func (a AccessKey) Copy() AccessKey {
	if a.Nonce != nil {
		nonce := *a.Nonce
		a.Nonce = &nonce
	}
	if a.Permission.FunctionCall != nil {
		permission := *a.Permission.FunctionCall
		if permission.MethodNames != nil {
			permission.MethodNames = append([]string{}, permission.MethodNames...)
		}
		a.Permission.FunctionCall = &permission
	}
	return a
}
