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

package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/optakt/near-batch/backend/chain"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/near"
	"github.com/optakt/near-batch/models/view"
	"github.com/optakt/near-batch/outcome"
)

// Client is a JSON-RPC client for a NEAR node. It is safe for concurrent use.
type Client struct {
	log      zerolog.Logger
	endpoint string
	client   *http.Client
	counter  uint64
}

// New creates a client for the node at the given endpoint.
func New(log zerolog.Logger, endpoint string, options ...func(*Config)) *Client {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	c := Client{
		log:      log.With().Str("component", "rpc").Str("endpoint", endpoint).Logger(),
		endpoint: endpoint,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}

	return &c
}

// View executes a read-only contract call and returns the raw result.
func (c *Client) View(ctx context.Context, req view.Request) ([]byte, error) {

	params := req.Block.Params()
	params["request_type"] = "call_function"
	params["account_id"] = req.ContractID
	params["method_name"] = req.MethodName
	params["args_base64"] = base64.StdEncoding.EncodeToString(req.Args)

	var result callResult
	err := c.call(ctx, "query", params, &result)
	if err != nil {
		return nil, err
	}

	// Older nodes report contract errors inside a successful response.
	if result.Error != "" {
		return nil, failure.RPC{
			Description: failure.NewDescription("contract execution failed",
				failure.WithString("contract", req.ContractID),
				failure.WithString("method", req.MethodName),
			),
			Name:  "CONTRACT_EXECUTION_ERROR",
			Cause: result.Error,
		}
	}

	c.log.Debug().
		Str("contract", req.ContractID).
		Str("method", req.MethodName).
		Uint64("height", result.BlockHeight).
		Int("size", len(result.Result)).
		Msg("view call executed")

	return result.Result, nil
}

// Status returns the final outcome of a transaction. It returns an error
// wrapping near.ErrNotFound when the node does not know the transaction, and
// near.ErrPending when it did not finish executing in time.
func (c *Client) Status(ctx context.Context, hash string, signerID string) (outcome.Outcome, error) {

	var o outcome.Outcome
	err := c.call(ctx, "tx", []string{hash, signerID}, &o)
	if err != nil {
		return outcome.Outcome{}, err
	}

	return o, nil
}

// Header returns the signing header for the next transaction of the given
// access key: the key nonce plus one and the hash of the latest final block.
func (c *Client) Header(ctx context.Context, accountID string, publicKey string) (chain.Header, error) {

	params := view.Final().Params()
	params["request_type"] = "view_access_key"
	params["account_id"] = accountID
	params["public_key"] = publicKey

	var result accessKeyResult
	err := c.call(ctx, "query", params, &result)
	if err != nil {
		return chain.Header{}, err
	}
	if result.Error != "" {
		return chain.Header{}, fmt.Errorf("could not find access key (account: %s, key: %s): %s: %w", accountID, publicKey, result.Error, near.ErrNotFound)
	}

	header := chain.Header{
		PublicKey: publicKey,
		Nonce:     result.Nonce + 1,
		BlockHash: result.BlockHash,
	}

	return header, nil
}

func (c *Client) call(ctx context.Context, method string, params interface{}, result interface{}) error {

	id := strconv.FormatUint(atomic.AddUint64(&c.counter, 1), 10)
	payload, err := json.Marshal(request{
		JSONRPC: jsonrpcVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("could not encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not execute request (method: %s): %w", method, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("could not read response: %w", err)
	}

	var rsp response
	err = json.Unmarshal(body, &rsp)
	if err != nil {
		if res.StatusCode != http.StatusOK {
			return failure.RPC{
				Description: failure.NewDescription("unexpected response status",
					failure.WithString("method", method),
					failure.WithString("status", res.Status),
				),
				Code: res.StatusCode,
			}
		}
		return fmt.Errorf("could not decode response: %w", err)
	}

	if rsp.Error != nil {
		return remoteFailure(method, rsp.Error)
	}

	err = json.Unmarshal(rsp.Result, result)
	if err != nil {
		return fmt.Errorf("could not decode result (method: %s): %w", method, err)
	}

	return nil
}

func remoteFailure(method string, remote *remoteError) error {

	cause := remote.Cause.Name
	if cause == "" {
		cause = compact(remote.Data)
	}

	rerr := failure.RPC{
		Description: failure.NewDescription(remote.Message,
			failure.WithString("method", method),
		),
		Code:  remote.Code,
		Name:  remote.Name,
		Cause: cause,
	}

	switch remote.Cause.Name {
	case causeUnknownTransaction, causeUnknownAccessKey, causeUnknownAccount:
		rerr.Err = near.ErrNotFound
	case causeTimeout:
		rerr.Err = near.ErrPending
	}

	return rerr
}

func compact(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var text string
	err := json.Unmarshal(data, &text)
	if err == nil {
		return text
	}
	return string(data)
}
