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
	"encoding/json"
	"fmt"
)

// Encoder turns a structured value into bytes.
type Encoder interface {
	Encode(value interface{}) ([]byte, error)
}

// Decoder fills the value pointed to by value from bytes.
type Decoder interface {
	Decode(data []byte, value interface{}) error
}

// EncoderFunc adapts an arbitrary function to the Encoder interface.
type EncoderFunc func(value interface{}) ([]byte, error)

func (e EncoderFunc) Encode(value interface{}) ([]byte, error) {
	return e(value)
}

// DecoderFunc adapts an arbitrary function to the Decoder interface.
type DecoderFunc func(data []byte, value interface{}) error

func (d DecoderFunc) Decode(data []byte, value interface{}) error {
	return d(data, value)
}

// Serialize converts call arguments into bytes. Raw bytes are passed through
// unchanged, nil arguments become an empty object and everything else is
// encoded with the given encoder, which defaults to JSON.
func Serialize(enc Encoder, args interface{}) ([]byte, error) {

	switch raw := args.(type) {
	case []byte:
		return raw, nil
	case json.RawMessage:
		return raw, nil
	}

	if enc == nil {
		enc = JSON{}
	}
	if args == nil {
		args = struct{}{}
	}

	data, err := enc.Encode(args)
	if err != nil {
		return nil, fmt.Errorf("could not encode arguments: %w", err)
	}

	return data, nil
}
