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
	"errors"
	"fmt"

	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/builder"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/near"
	"github.com/optakt/near-batch/outcome"
)

// SendRaw submits all transactions of the builder, one after the other and in
// the order they were added, and returns their outcomes in the same order.
//
// When a submission fails, the outcomes collected before the failure are
// returned together with the error. A submitter reporting a pending outcome
// stops the submission with a failure.Pending error.
func (t *Transactor) SendRaw(ctx context.Context, b *builder.Builder, options ...func(*SendConfig)) ([]outcome.Outcome, error) {

	cfg := SendConfig{}
	for _, option := range options {
		option(&cfg)
	}

	if b == nil {
		return nil, failure.SendTransaction{
			Description: failure.NewDescription("no builder given"),
		}
	}

	err := b.Err()
	if err != nil {
		return nil, fmt.Errorf("could not build transactions: %w", err)
	}

	// Map all transactions before submitting the first one, so that a mapping
	// failure never leaves a batch half submitted.
	txs, err := wallet.Transactions(b.ToTransactions())
	if err != nil {
		return nil, fmt.Errorf("could not map transactions: %w", err)
	}
	if len(txs) == 0 {
		return nil, failure.SendTransaction{
			Description: failure.NewDescription("no transactions to send"),
		}
	}
	if t.submit == nil {
		return nil, failure.SendTransaction{
			Description: failure.NewDescription("no submitter configured"),
		}
	}

	batch, ok := t.submit.(BatchSubmitter)
	var outcomes []outcome.Outcome
	if ok {
		outcomes, err = t.sendBatch(ctx, batch, txs)
	} else {
		outcomes, err = t.sendEach(ctx, txs)
	}
	if err != nil {
		return outcomes, err
	}

	if cfg.ReceiptErrors {
		err = outcome.CollectReceiptErrors(outcomes...)
		if err != nil {
			return outcomes, fmt.Errorf("transactions have failed receipts: %w", err)
		}
	}

	return outcomes, nil
}

// Send submits the transactions of the builder and decodes the return value
// of the last one into value. It returns false if the last transaction
// returned nothing.
func (t *Transactor) Send(ctx context.Context, b *builder.Builder, value interface{}, options ...func(*SendConfig)) (bool, error) {

	cfg := SendConfig{}
	for _, option := range options {
		option(&cfg)
	}

	outcomes, err := t.SendRaw(ctx, b, options...)
	if err != nil {
		return false, err
	}

	last := outcomes[len(outcomes)-1]
	ok, err := outcome.DecodeValue(last, cfg.Decoder, value)
	if err != nil {
		return false, fmt.Errorf("could not decode return value (hash: %s): %w", last.Hash(), err)
	}

	return ok, nil
}

func (t *Transactor) sendEach(ctx context.Context, txs []wallet.Transaction) ([]outcome.Outcome, error) {

	outcomes := make([]outcome.Outcome, 0, len(txs))
	for index, tx := range txs {

		err := ctx.Err()
		if err != nil {
			return outcomes, fmt.Errorf("submission interrupted (index: %d): %w", index, err)
		}

		log := t.log.With().
			Int("index", index).
			Str("receiver", tx.ReceiverID).
			Int("actions", len(tx.Actions)).
			Logger()

		log.Debug().Msg("submitting transaction")

		o, err := t.submit.Transaction(ctx, tx)
		if errors.Is(err, near.ErrPending) {
			log.Info().Msg("transaction outcome pending")
			return outcomes, pending(index, len(txs), err)
		}
		if err != nil {
			return outcomes, fmt.Errorf("could not submit transaction (index: %d, receiver: %s): %w", index, tx.ReceiverID, err)
		}

		log.Info().Str("hash", o.Hash()).Msg("transaction executed")

		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

func (t *Transactor) sendBatch(ctx context.Context, batch BatchSubmitter, txs []wallet.Transaction) ([]outcome.Outcome, error) {

	t.log.Debug().Int("transactions", len(txs)).Msg("submitting transaction batch")

	outcomes, err := batch.Transactions(ctx, txs)
	if errors.Is(err, near.ErrPending) {
		t.log.Info().Int("index", len(outcomes)).Msg("transaction outcome pending")
		return outcomes, pending(len(outcomes), len(txs), err)
	}
	if err != nil {
		return outcomes, fmt.Errorf("could not submit transaction batch: %w", err)
	}
	if len(outcomes) != len(txs) {
		return outcomes, failure.SendTransaction{
			Description: failure.NewDescription("invalid number of outcomes",
				failure.WithInt("have", len(outcomes)),
				failure.WithInt("want", len(txs)),
			),
		}
	}

	t.log.Info().Int("transactions", len(txs)).Msg("transaction batch executed")

	return outcomes, nil
}

func pending(index int, total int, err error) failure.Pending {
	return failure.Pending{
		Description: failure.NewDescription("no outcome available yet",
			failure.WithErr(err),
		),
		Index:     index,
		Remaining: total - index - 1,
	}
}
