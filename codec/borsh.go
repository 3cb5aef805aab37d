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

package codec

import (
	"github.com/near/borsh-go"
)

// Borsh is the binary codec for contracts that take Borsh-serialized
// arguments. The schema is the Go type of the value: structs, fixed arrays,
// slices, maps, sets (`map[T]struct{}`), enums (`borsh.Enum`), options
// (pointers) and primitives are supported.
type Borsh struct{}

func (Borsh) Encode(value interface{}) ([]byte, error) {
	return borsh.Serialize(value)
}

func (Borsh) Decode(data []byte, value interface{}) error {
	return borsh.Deserialize(value, data)
}
