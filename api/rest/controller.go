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

package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/near-batch/backend/chain"
	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/near"
	"github.com/optakt/near-batch/models/view"
	"github.com/optakt/near-batch/outcome"
	"github.com/optakt/near-batch/transactor"
)

type Controller struct {
	tx       Transactor
	validate Validator
	headers  chain.Headers
}

func NewController(tx Transactor, validate Validator, headers chain.Headers) *Controller {
	c := Controller{
		tx:       tx,
		validate: validate,
		headers:  headers,
	}
	return &c
}

// Compile normalizes a batch of wallet transactions and optionally encodes
// them for signing.
func (c *Controller) Compile(ctx echo.Context) error {

	var req CompileRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	err = c.validate.Transactions(req.Transactions)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	b, err := wallet.Parse(req.Transactions)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	if b.Err() != nil {
		return echo.NewHTTPError(http.StatusBadRequest, b.Err())
	}
	if b.Len() == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no transactions to compile")
	}

	txs, err := wallet.Transactions(b.ToTransactions())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	res := CompileResponse{
		Transactions: txs,
	}
	if req.PublicKey == "" {
		return ctx.JSON(http.StatusOK, res)
	}

	headers := c.headers
	if req.Nonce != nil && req.BlockHash != "" {
		headers = chain.Fixed{Nonce: *req.Nonce, BlockHash: req.BlockHash}
	}
	if headers == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "nonce and block hash are required")
	}

	payloads, err := chain.Payloads(ctx.Request().Context(), b.ToTransactions(), req.PublicKey, headers)
	if err != nil {
		return echo.NewHTTPError(code(err), err)
	}
	for _, payload := range payloads {
		res.Payloads = append(res.Payloads, Payload{
			SignerID: payload.SignerID,
			Nonce:    payload.Nonce,
			Hash:     payload.Hash,
			Data:     payload.Data,
		})
	}

	return ctx.JSON(http.StatusOK, res)
}

// View executes a read-only contract call.
func (c *Controller) View(ctx echo.Context) error {

	var req ViewRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	block := view.Block{
		Finality:   req.Finality,
		Checkpoint: req.Checkpoint,
		Height:     req.Height,
		Hash:       req.Hash,
	}
	if block == (view.Block{}) {
		block = view.Final()
	}
	options := []func(*transactor.ViewConfig){transactor.WithBlock(block)}

	var args interface{}
	if len(req.Args) > 0 {
		args = req.Args
	}

	var res ViewResponse
	var value interface{} = &res.Result
	if req.Raw {
		value = &res.Data
		options = append(options, transactor.WithViewDecoder(codec.DecoderFunc(copyRaw)))
	}

	err = c.tx.View(ctx.Request().Context(), req.ContractID, req.MethodName, args, value, options...)
	if err != nil {
		return echo.NewHTTPError(code(err), err)
	}

	return ctx.JSON(http.StatusOK, res)
}

// Outcome waits for the final outcome of a broadcast transaction and returns
// it along with its decoded receipt failures.
func (c *Controller) Outcome(ctx echo.Context) error {

	hash := ctx.Param("hash")
	signerID := ctx.QueryParam("signer")
	if signerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing signer")
	}

	out, err := c.tx.Await(ctx.Request().Context(), hash, signerID)
	if errors.Is(err, near.ErrPending) {
		return echo.NewHTTPError(http.StatusAccepted, err)
	}
	if err != nil {
		return echo.NewHTTPError(code(err), err)
	}

	res := OutcomeResponse{
		Outcome: out,
	}
	var receipts failure.Receipts
	err = outcome.CollectReceiptErrors(out)
	if errors.As(err, &receipts) {
		res.Failures = receipts.Failures
	}

	return ctx.JSON(http.StatusOK, res)
}

func copyRaw(data []byte, value interface{}) error {
	raw, ok := value.(*[]byte)
	if !ok {
		return fmt.Errorf("invalid raw value type (%T)", value)
	}
	*raw = append([]byte{}, data...)
	return nil
}

func code(err error) int {

	var invalid failure.InvalidRequest
	var key failure.InvalidKey
	var amount failure.InvalidAmount
	var rerr failure.RPC
	switch {
	case errors.As(err, &invalid), errors.As(err, &key), errors.As(err, &amount):
		return http.StatusBadRequest
	case errors.Is(err, near.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &rerr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
