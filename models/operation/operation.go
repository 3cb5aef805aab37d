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

package operation

// Discriminants of the operation variants, as used by the wire formats.
const (
	TypeCreateAccount  = "CreateAccount"
	TypeDeleteAccount  = "DeleteAccount"
	TypeAddKey         = "AddKey"
	TypeDeleteKey      = "DeleteKey"
	TypeDeployContract = "DeployContract"
	TypeStake          = "Stake"
	TypeFunctionCall   = "FunctionCall"
	TypeTransfer       = "Transfer"
)

// Operation is one atomic effect applied to the receiver account of a
// transaction. The set of implementations is closed: only the types of this
// package satisfy it.
//
// Amounts and gas are always base-unit decimal strings. Nothing is validated
// on construction; backends check the values when they translate them.
type Operation interface {
	Type() string
	clone() Operation
}

// CreateAccount creates the receiver account.
type CreateAccount struct{}

func (CreateAccount) Type() string { return TypeCreateAccount }

func (c CreateAccount) clone() Operation { return c }

// DeleteAccount deletes the receiver account and sends its balance to the
// beneficiary.
type DeleteAccount struct {
	BeneficiaryID string
}

func (DeleteAccount) Type() string { return TypeDeleteAccount }

func (d DeleteAccount) clone() Operation { return d }

// AddKey adds an access key to the receiver account.
type AddKey struct {
	PublicKey string
	AccessKey AccessKey
}

func (AddKey) Type() string { return TypeAddKey }

func (a AddKey) clone() Operation {
	a.AccessKey = a.AccessKey.Copy()
	return a
}

// DeleteKey removes an access key from the receiver account.
type DeleteKey struct {
	PublicKey string
}

func (DeleteKey) Type() string { return TypeDeleteKey }

func (d DeleteKey) clone() Operation { return d }

// DeployContract deploys the given code on the receiver account.
type DeployContract struct {
	Code []byte
}

func (DeployContract) Type() string { return TypeDeployContract }

func (d DeployContract) clone() Operation {
	d.Code = copyBytes(d.Code)
	return d
}

// Stake stakes the given amount with the given validator key.
type Stake struct {
	Amount    string
	PublicKey string
}

func (Stake) Type() string { return TypeStake }

func (s Stake) clone() Operation { return s }

// FunctionCall invokes a contract method. Args holds the already serialized
// arguments.
type FunctionCall struct {
	MethodName string
	Args       []byte
	Deposit    string
	Gas        string
}

func (FunctionCall) Type() string { return TypeFunctionCall }

func (f FunctionCall) clone() Operation {
	f.Args = copyBytes(f.Args)
	return f
}

// Transfer sends the given amount to the receiver account.
type Transfer struct {
	Amount string
}

func (Transfer) Type() string { return TypeTransfer }

func (t Transfer) clone() Operation { return t }

// Copy returns a deep copy of the given operation.
func Copy(op Operation) Operation {
	if op == nil {
		return nil
	}
	return op.clone()
}

func copyBytes(data []byte) []byte {
	if data == nil {
		return nil
	}
	dup := make([]byte, len(data))
	copy(dup, data)
	return dup
}
