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

package mocks

import (
	"testing"
)

type Encoder struct {
	EncodeFunc func(value interface{}) ([]byte, error)
}

func BaselineEncoder(t *testing.T) *Encoder {
	t.Helper()

	e := Encoder{
		EncodeFunc: func(interface{}) ([]byte, error) {
			return GenericBytes, nil
		},
	}

	return &e
}

func (e *Encoder) Encode(value interface{}) ([]byte, error) {
	return e.EncodeFunc(value)
}

type Decoder struct {
	DecodeFunc func(data []byte, value interface{}) error
}

func BaselineDecoder(t *testing.T) *Decoder {
	t.Helper()

	d := Decoder{
		DecodeFunc: func([]byte, interface{}) error {
			return nil
		},
	}

	return &d
}

func (d *Decoder) Decode(data []byte, value interface{}) error {
	return d.DecodeFunc(data, value)
}
