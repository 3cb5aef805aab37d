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
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/optakt/near-batch/models/near"
	"github.com/optakt/near-batch/outcome"
)

// Await polls the status of a broadcast transaction until its outcome is
// known, backing off exponentially between lookups. It gives up once the
// configured timeout elapsed, returning an error wrapping near.ErrPending, or
// near.ErrNotFound if the node never knew the transaction.
func (t *Transactor) Await(ctx context.Context, hash string, signerID string) (outcome.Outcome, error) {

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = t.cfg.AwaitInterval
	policy.MaxElapsedTime = t.cfg.AwaitTimeout

	var result outcome.Outcome
	var missing error
	lookup := func() error {
		o, err := t.fetch.Status(ctx, hash, signerID)
		if errors.Is(err, near.ErrNotFound) {
			missing = err
			return near.ErrPending
		}
		if errors.Is(err, near.ErrPending) {
			missing = nil
			return near.ErrPending
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		if o.Status.Unknown {
			missing = nil
			return near.ErrPending
		}
		result = o
		return nil
	}

	notify := func(err error, wait time.Duration) {
		t.log.Debug().Str("hash", hash).Dur("wait", wait).Msg("transaction outcome not available yet")
	}

	err := backoff.RetryNotify(lookup, backoff.WithContext(policy, ctx), notify)
	if errors.Is(err, near.ErrPending) && missing != nil {
		err = missing
	}
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("could not await outcome (hash: %s): %w", hash, err)
	}

	return result, nil
}
