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

package validator

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/view"
)

// Tags of the custom validations.
const (
	accountTag  = "account_id"
	blockTag    = "block"
	finalityTag = "finality"
)

const (
	minAccountLength = 2
	maxAccountLength = 64
)

var accountPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

// Validator checks requests and transactions before they reach a node.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the account and block rules registered.
func New() *Validator {

	v := validator.New()

	// Register the account rule as a tag, so that request types can opt in
	// with struct tags, and the block rules at the struct level, so that they
	// apply wherever a block reference is embedded.
	_ = v.RegisterValidation(accountTag, accountValidator)
	v.RegisterStructValidation(blockValidator, view.Block{})

	val := Validator{
		validate: v,
	}

	return &val
}

// Request checks a view request.
func (v *Validator) Request(req view.Request) error {
	return v.check(req)
}

// Transactions checks the accounts of wallet transactions.
func (v *Validator) Transactions(txs []wallet.Transaction) error {
	for index, tx := range txs {
		err := v.check(tx)
		if err != nil {
			return fmt.Errorf("invalid transaction (index: %d): %w", index, err)
		}
	}
	return nil
}

// Account checks a single account ID.
func (v *Validator) Account(accountID string) error {
	err := v.validate.Var(accountID, "required,"+accountTag)
	if err != nil {
		return failure.InvalidRequest{
			Description: failure.NewDescription("invalid account ID",
				failure.WithString("account", accountID),
			),
			Field: "account",
		}
	}
	return nil
}

func (v *Validator) check(value interface{}) error {

	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("could not validate request: %w", err)
	}

	// Report the first problem only, like the node does.
	first := errs[0]
	return failure.InvalidRequest{
		Description: failure.NewDescription("field failed validation",
			failure.WithString("tag", first.Tag()),
			failure.WithString("value", fmt.Sprint(first.Value())),
		),
		Field: first.Namespace(),
	}
}

func accountValidator(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if len(id) < minAccountLength || len(id) > maxAccountLength {
		return false
	}
	return accountPattern.MatchString(id)
}

func blockValidator(sl validator.StructLevel) {
	block := sl.Current().Interface().(view.Block)

	selectors := 0
	if block.Finality != "" {
		selectors++
	}
	if block.Checkpoint != "" {
		selectors++
	}
	if block.Height != nil {
		selectors++
	}
	if block.Hash != "" {
		selectors++
	}
	if selectors > 1 {
		sl.ReportError(block, "Block", "Block", blockTag, "")
	}

	switch block.Finality {
	case "", view.FinalityOptimistic, view.FinalityDoomslug, view.FinalityFinal:
	default:
		sl.ReportError(block.Finality, "Finality", "Finality", finalityTag, "")
	}

	switch block.Checkpoint {
	case "", view.CheckpointEarliest, view.CheckpointGenesis:
	default:
		sl.ReportError(block.Checkpoint, "Checkpoint", "Checkpoint", blockTag, "")
	}
}
