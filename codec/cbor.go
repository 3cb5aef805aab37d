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
	"github.com/fxamacker/cbor/v2"
)

// CBOR encodes values as canonical CBOR, so that equal values always produce
// the same bytes.
type CBOR struct {
	encoder cbor.EncMode
}

// NewCBOR creates a new canonical CBOR codec.
func NewCBOR() *CBOR {

	// We should never fail here if the options are valid, so use panic to keep
	// the function signature for the codec clean.
	options := cbor.CanonicalEncOptions()
	options.Time = cbor.TimeRFC3339Nano
	encoder, err := options.EncMode()
	if err != nil {
		panic(err)
	}

	c := CBOR{
		encoder: encoder,
	}

	return &c
}

func (c *CBOR) Encode(value interface{}) ([]byte, error) {
	return c.encoder.Marshal(value)
}

func (c *CBOR) Decode(data []byte, value interface{}) error {
	return cbor.Unmarshal(data, value)
}
