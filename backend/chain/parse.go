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

package chain

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/btcsuite/btcutil/base58"

	"github.com/optakt/near-batch/failure"
)

const ed25519Prefix = "ed25519:"

// ParsePublicKey decodes a public key in the "ed25519:<base58>" format. Keys
// without prefix are assumed to be ed25519 keys.
func ParsePublicKey(key string) (PublicKey, error) {

	encoded := key
	idx := strings.Index(key, ":")
	if idx >= 0 {
		if !strings.HasPrefix(key, ed25519Prefix) {
			return PublicKey{}, failure.InvalidKey{
				Description: failure.NewDescription("unsupported key type",
					failure.WithString("type", key[:idx]),
				),
				Key: key,
			}
		}
		encoded = key[len(ed25519Prefix):]
	}

	data := base58.Decode(encoded)
	if len(data) != 32 {
		return PublicKey{}, failure.InvalidKey{
			Description: failure.NewDescription("invalid key length",
				failure.WithInt("have", len(data)),
				failure.WithInt("want", 32),
			),
			Key: key,
		}
	}

	var pk PublicKey
	pk.KeyType = KeyTypeED25519
	copy(pk.Data[:], data)

	return pk, nil
}

// String encodes the public key in the "ed25519:<base58>" format.
func (p PublicKey) String() string {
	return ed25519Prefix + base58.Encode(p.Data[:])
}

// ParseHash decodes a base58 block or transaction hash.
func ParseHash(hash string) ([32]byte, error) {
	var out [32]byte
	data := base58.Decode(hash)
	if len(data) != len(out) {
		return out, failure.InvalidKey{
			Description: failure.NewDescription("invalid hash length",
				failure.WithInt("have", len(data)),
				failure.WithInt("want", len(out)),
			),
			Key: hash,
		}
	}
	copy(out[:], data)
	return out, nil
}

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// ParseAmount decodes a base-unit decimal amount that fits in 128 bits.
func ParseAmount(amount string) (big.Int, error) {
	var value big.Int
	_, ok := value.SetString(amount, 10)
	if !ok {
		return big.Int{}, failure.InvalidAmount{
			Description: failure.NewDescription("amount is not a decimal integer"),
			Amount:      amount,
		}
	}
	if value.Sign() < 0 || value.Cmp(maxU128) > 0 {
		return big.Int{}, failure.InvalidAmount{
			Description: failure.NewDescription("amount does not fit in 128 bits"),
			Amount:      amount,
		}
	}
	return value, nil
}

// MaxGas is the most gas a single function call can attach (300 Tgas).
const MaxGas = uint64(300_000_000_000_000)

// ParseGas decodes a decimal gas amount no larger than MaxGas.
func ParseGas(gas string) (uint64, error) {
	value, err := strconv.ParseUint(gas, 10, 64)
	if err != nil {
		return 0, failure.InvalidAmount{
			Description: failure.NewDescription("invalid gas",
				failure.WithErr(err),
			),
			Amount: gas,
		}
	}
	if value > MaxGas {
		return 0, failure.InvalidAmount{
			Description: failure.NewDescription("gas exceeds limit",
				failure.WithUint64("gas", value),
				failure.WithUint64("max", MaxGas),
			),
			Amount: gas,
		}
	}
	return value, nil
}
