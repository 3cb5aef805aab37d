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
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/operation"
)

// Action is a single wallet action record. Params holds one of the *Params
// types of this package, or nil for CreateAccount.
type Action struct {
	Type   string      `json:"type"`
	Params interface{} `json:"params,omitempty"`
}

type FunctionCallParams struct {
	MethodName string `json:"methodName"`
	Args       []byte `json:"args"`
	Gas        string `json:"gas"`
	Deposit    string `json:"deposit"`
}

// UnmarshalJSON implements json.Unmarshaler. Arguments are accepted either as
// a base64 string or as an inline JSON value, which is kept as raw bytes.
func (f *FunctionCallParams) UnmarshalJSON(data []byte) error {

	var raw struct {
		MethodName string          `json:"methodName"`
		Args       json.RawMessage `json:"args"`
		Gas        string          `json:"gas"`
		Deposit    string          `json:"deposit"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	var args []byte
	trimmed := bytes.TrimSpace(raw.Args)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		args = nil
	case trimmed[0] == '"':
		var encoded string
		err = json.Unmarshal(trimmed, &encoded)
		if err != nil {
			return fmt.Errorf("could not decode arguments: %w", err)
		}
		args, err = base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("could not decode base64 arguments: %w", err)
		}
	default:
		var buf bytes.Buffer
		err = json.Compact(&buf, trimmed)
		if err != nil {
			return fmt.Errorf("could not compact arguments: %w", err)
		}
		args = buf.Bytes()
	}

	*f = FunctionCallParams{
		MethodName: raw.MethodName,
		Args:       args,
		Gas:        raw.Gas,
		Deposit:    raw.Deposit,
	}

	return nil
}

type TransferParams struct {
	Deposit string `json:"deposit"`
}

type StakeParams struct {
	Stake     string `json:"stake"`
	PublicKey string `json:"publicKey"`
}

type AddKeyParams struct {
	PublicKey string    `json:"publicKey"`
	AccessKey AccessKey `json:"accessKey"`
}

type DeleteKeyParams struct {
	PublicKey string `json:"publicKey"`
}

type DeleteAccountParams struct {
	BeneficiaryID string `json:"beneficiaryId"`
}

type DeployContractParams struct {
	Code []byte `json:"code"`
}

// UnmarshalJSON implements json.Unmarshaler. It decodes the parameters into
// the concrete type matching the action type.
func (a *Action) UnmarshalJSON(data []byte) error {

	var raw struct {
		Type   string          `json:"type"`
		Params json.RawMessage `json:"params"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	var params interface{}
	switch raw.Type {
	case operation.TypeCreateAccount:
		*a = Action{Type: raw.Type}
		return nil
	case operation.TypeFunctionCall:
		var p FunctionCallParams
		err = unmarshalParams(raw.Params, &p)
		params = p
	case operation.TypeTransfer:
		var p TransferParams
		err = unmarshalParams(raw.Params, &p)
		params = p
	case operation.TypeStake:
		var p StakeParams
		err = unmarshalParams(raw.Params, &p)
		params = p
	case operation.TypeAddKey:
		var p AddKeyParams
		err = unmarshalParams(raw.Params, &p)
		params = p
	case operation.TypeDeleteKey:
		var p DeleteKeyParams
		err = unmarshalParams(raw.Params, &p)
		params = p
	case operation.TypeDeleteAccount:
		var p DeleteAccountParams
		err = unmarshalParams(raw.Params, &p)
		params = p
	case operation.TypeDeployContract:
		var p DeployContractParams
		err = unmarshalParams(raw.Params, &p)
		params = p
	default:
		return failure.UnknownOperation{
			Description: failure.NewDescription("unknown wallet action type"),
			Type:        raw.Type,
		}
	}
	if err != nil {
		return fmt.Errorf("could not decode %s parameters: %w", raw.Type, err)
	}

	*a = Action{
		Type:   raw.Type,
		Params: params,
	}

	return nil
}

func unmarshalParams(data json.RawMessage, params interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("missing parameters")
	}
	return json.Unmarshal(data, params)
}
