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

package outcome

import (
	"encoding/base64"
	"fmt"

	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/failure"
)

// DecodeValue decodes the success value of the outcome into the value pointed
// to by value, using JSON when no decoder is given. It returns false without
// calling the decoder when the call succeeded but returned nothing. Outcomes
// without a success value, including failed ones, result in a
// failure.ParseOutcome error.
func DecodeValue(o Outcome, dec codec.Decoder, value interface{}) (bool, error) {

	if o.Status.Failed() {
		return false, failure.ParseOutcome{
			Description: failure.NewDescription("outcome status is a failure"),
			Failure:     compact(o.Status.Failure),
		}
	}
	if o.Status.SuccessValue == nil {
		return false, failure.ParseOutcome{
			Description: failure.NewDescription("outcome status has no success value",
				failure.WithString("hash", o.Hash()),
			),
		}
	}

	encoded := *o.Status.SuccessValue
	if encoded == "" {
		return false, nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false, failure.ParseOutcome{
			Description: failure.NewDescription("success value is not valid base64",
				failure.WithErr(err),
			),
		}
	}

	if dec == nil {
		dec = codec.JSON{}
	}
	err = dec.Decode(data, value)
	if err != nil {
		return false, fmt.Errorf("could not decode success value: %w", err)
	}

	return true, nil
}
