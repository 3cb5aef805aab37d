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

package transactor

import (
	"context"
	"fmt"

	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/models/view"
)

// View calls a read-only contract method and decodes its return value into
// value. Arguments follow the same encoding rules as function calls. The call
// is executed at the final block unless another block is given.
func (t *Transactor) View(ctx context.Context, contractID string, methodName string, args interface{}, value interface{}, options ...func(*ViewConfig)) error {

	cfg := ViewConfig{
		Encoder: codec.JSON{},
		Decoder: codec.JSON{},
		Block:   view.Final(),
	}
	for _, option := range options {
		option(&cfg)
	}

	data, err := codec.Serialize(cfg.Encoder, args)
	if err != nil {
		return fmt.Errorf("could not serialize view arguments: %w", err)
	}

	req := view.Request{
		ContractID: contractID,
		MethodName: methodName,
		Args:       data,
		Block:      cfg.Block,
	}
	err = t.validate.Request(req)
	if err != nil {
		return fmt.Errorf("invalid view request: %w", err)
	}

	t.log.Debug().
		Str("contract", contractID).
		Str("method", methodName).
		Str("block", req.Block.String()).
		Msg("executing view call")

	result, err := t.query.View(ctx, req)
	if err != nil {
		return fmt.Errorf("could not execute view call (contract: %s, method: %s): %w", contractID, methodName, err)
	}

	if value == nil {
		return nil
	}

	err = cfg.Decoder.Decode(result, value)
	if err != nil {
		return fmt.Errorf("could not decode view result: %w", err)
	}

	return nil
}
