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
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Zstd compresses the output of an encoder and decompresses the input of a
// decoder with Zstandard. It is safe for concurrent use.
type Zstd struct {
	encoder      Encoder
	decoder      Decoder
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// NewZstd wraps the given encoder and decoder; nil ones default to JSON.
func NewZstd(enc Encoder, dec Decoder) *Zstd {

	if enc == nil {
		enc = JSON{}
	}
	if dec == nil {
		dec = JSON{}
	}

	// We should never fail here if the options are valid, so use panic to keep
	// the function signature for the codec clean.
	compressor, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic(err)
	}
	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	z := Zstd{
		encoder:      enc,
		decoder:      dec,
		compressor:   compressor,
		decompressor: decompressor,
	}

	return &z
}

func (z *Zstd) Compress(data []byte) []byte {
	return z.compressor.EncodeAll(data, nil)
}

func (z *Zstd) Decompress(compressed []byte) ([]byte, error) {
	return z.decompressor.DecodeAll(compressed, nil)
}

func (z *Zstd) Encode(value interface{}) ([]byte, error) {
	data, err := z.encoder.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("could not encode value: %w", err)
	}
	return z.Compress(data), nil
}

func (z *Zstd) Decode(compressed []byte, value interface{}) error {
	data, err := z.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("could not decompress data: %w", err)
	}
	err = z.decoder.Decode(data, value)
	if err != nil {
		return fmt.Errorf("could not decode value: %w", err)
	}
	return nil
}
