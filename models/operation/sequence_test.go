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

package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/near-batch/models/operation"
)

func TestNewSequence(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		seq := operation.NewSequence()

		assert.Equal(t, 0, seq.Len())
		assert.Empty(t, seq.Operations())
	})

	t.Run("copies the given operations", func(t *testing.T) {
		t.Parallel()

		code := []byte{0x00, 0x61, 0x73, 0x6d}
		ops := []operation.Operation{
			operation.DeployContract{Code: code},
			operation.Transfer{Amount: "1"},
		}

		seq := operation.NewSequence(ops...)
		code[0] = 0xff
		ops[1] = operation.CreateAccount{}

		got := seq.Operations()
		require.Len(t, got, 2)
		assert.Equal(t, operation.DeployContract{Code: []byte{0x00, 0x61, 0x73, 0x6d}}, got[0])
		assert.Equal(t, operation.Transfer{Amount: "1"}, got[1])
	})
}

func TestSequence_Append(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		seq := operation.NewSequence()
		seq.Append(operation.CreateAccount{}).
			Append(operation.Transfer{Amount: "10"}).
			Append(operation.DeleteKey{PublicKey: "ed25519:key"})

		want := []operation.Operation{
			operation.CreateAccount{},
			operation.Transfer{Amount: "10"},
			operation.DeleteKey{PublicKey: "ed25519:key"},
		}

		assert.Equal(t, 3, seq.Len())
		assert.Equal(t, want, seq.Operations())
	})

	t.Run("stores its own copy of the bytes", func(t *testing.T) {
		t.Parallel()

		code := []byte{1, 2, 3}
		args := []byte(`{"a":1}`)
		seq := operation.NewSequence()
		seq.Append(operation.DeployContract{Code: code}).
			Append(operation.FunctionCall{MethodName: "get", Args: args})

		code[0] = 9
		args[0] = '['

		ops := seq.Operations()
		assert.Equal(t, operation.DeployContract{Code: []byte{1, 2, 3}}, ops[0])
		assert.Equal(t, operation.FunctionCall{MethodName: "get", Args: []byte(`{"a":1}`)}, ops[1])
	})

	t.Run("stores its own copy of the access key", func(t *testing.T) {
		t.Parallel()

		key := operation.FunctionCallAccess("c.near", "", "get")
		seq := operation.NewSequence()
		seq.Append(operation.AddKey{PublicKey: "ed25519:key", AccessKey: key})

		key.Permission.FunctionCall.MethodNames[0] = "set"

		add, ok := seq.Operations()[0].(operation.AddKey)
		require.True(t, ok)
		assert.Equal(t, []string{"get"}, add.AccessKey.Permission.FunctionCall.MethodNames)
	})
}

func TestSequence_Operations(t *testing.T) {
	t.Run("snapshot is independent", func(t *testing.T) {
		t.Parallel()

		seq := operation.NewSequence(operation.FunctionCall{
			MethodName: "set",
			Args:       []byte(`{"a":1}`),
			Deposit:    "0",
			Gas:        "1",
		})

		snapshot := seq.Operations()
		call := snapshot[0].(operation.FunctionCall)
		call.Args[0] = 'X'
		snapshot[0] = operation.CreateAccount{}
		snapshot = append(snapshot, operation.Transfer{Amount: "1"})

		got := seq.Operations()
		require.Len(t, got, 1)
		assert.Equal(t, []byte(`{"a":1}`), got[0].(operation.FunctionCall).Args)
	})

	t.Run("access keys are deep copied", func(t *testing.T) {
		t.Parallel()

		key := operation.FunctionCallAccess("app.near", "", "a", "b").WithNonce(7)
		seq := operation.NewSequence(operation.AddKey{PublicKey: "ed25519:key", AccessKey: key})

		snapshot := seq.Operations()
		add := snapshot[0].(operation.AddKey)
		add.AccessKey.Permission.FunctionCall.MethodNames[0] = "changed"
		*add.AccessKey.Nonce = 99

		got := seq.Operations()[0].(operation.AddKey)
		assert.Equal(t, []string{"a", "b"}, got.AccessKey.Permission.FunctionCall.MethodNames)
		assert.Equal(t, uint64(7), *got.AccessKey.Nonce)
	})
}

func TestSequence_Extend(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		first := operation.NewSequence(operation.CreateAccount{})
		second := operation.NewSequence(operation.Transfer{Amount: "1"}, operation.Transfer{Amount: "2"})

		first.Extend(second)
		second.Append(operation.Transfer{Amount: "3"})

		want := []operation.Operation{
			operation.CreateAccount{},
			operation.Transfer{Amount: "1"},
			operation.Transfer{Amount: "2"},
		}
		assert.Equal(t, want, first.Operations())
		assert.Equal(t, 3, second.Len())
	})

	t.Run("handles nil sequence", func(t *testing.T) {
		t.Parallel()

		seq := operation.NewSequence(operation.CreateAccount{})
		seq.Extend(nil)

		assert.Equal(t, 1, seq.Len())
	})

	t.Run("handles extending with itself", func(t *testing.T) {
		t.Parallel()

		seq := operation.NewSequence(operation.Transfer{Amount: "1"})
		seq.Extend(seq)

		assert.Equal(t, 2, seq.Len())
	})
}

func TestSequence_Copy(t *testing.T) {
	seq := operation.NewSequence(operation.Transfer{Amount: "1"})

	dup := seq.Copy()
	dup.Append(operation.Transfer{Amount: "2"})

	assert.Equal(t, 1, seq.Len())
	assert.Equal(t, 2, dup.Len())
}
