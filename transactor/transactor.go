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
	"github.com/rs/zerolog"
)

// Transactor submits the transactions of builders and runs view calls. It
// holds no state between calls and can be shared by concurrent callers.
type Transactor struct {
	log      zerolog.Logger
	submit   Submitter
	query    Querier
	fetch    Fetcher
	validate Validator
	cfg      Config
}

// New creates a new transactor using the given collaborators. The submitter
// can be nil for a transactor that only runs view calls and awaits outcomes.
func New(log zerolog.Logger, submit Submitter, query Querier, fetch Fetcher, validate Validator, options ...func(*Config)) *Transactor {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	t := Transactor{
		log:      log.With().Str("component", "transactor").Logger(),
		submit:   submit,
		query:    query,
		fetch:    fetch,
		validate: validate,
		cfg:      cfg,
	}

	return &t
}
