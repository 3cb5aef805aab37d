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

func TestOperation_Type(t *testing.T) {
	tests := []struct {
		op   operation.Operation
		want string
	}{
		{op: operation.CreateAccount{}, want: "CreateAccount"},
		{op: operation.DeleteAccount{}, want: "DeleteAccount"},
		{op: operation.AddKey{}, want: "AddKey"},
		{op: operation.DeleteKey{}, want: "DeleteKey"},
		{op: operation.DeployContract{}, want: "DeployContract"},
		{op: operation.Stake{}, want: "Stake"},
		{op: operation.FunctionCall{}, want: "FunctionCall"},
		{op: operation.Transfer{}, want: "Transfer"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.op.Type())
		})
	}
}

func TestCopy(t *testing.T) {
	t.Run("handles nil operation", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, operation.Copy(nil))
	})

	t.Run("copies code bytes", func(t *testing.T) {
		t.Parallel()

		op := operation.DeployContract{Code: []byte{1, 2, 3}}
		dup := operation.Copy(op).(operation.DeployContract)
		dup.Code[0] = 9

		assert.Equal(t, []byte{1, 2, 3}, op.Code)
	})

	t.Run("keeps nil byte slices nil", func(t *testing.T) {
		t.Parallel()

		dup := operation.Copy(operation.FunctionCall{MethodName: "get"}).(operation.FunctionCall)

		assert.Nil(t, dup.Args)
	})
}

func TestFunctionCallAccess(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		key := operation.FunctionCallAccess("app.near", "250000000000000000000000", "vote", "comment")

		assert.False(t, key.IsFullAccess())
		assert.Nil(t, key.Nonce)
		require.NotNil(t, key.Permission.FunctionCall)
		assert.Equal(t, "app.near", key.Permission.FunctionCall.ReceiverID)
		assert.Equal(t, "250000000000000000000000", key.Permission.FunctionCall.Allowance)
		assert.Equal(t, []string{"vote", "comment"}, key.Permission.FunctionCall.MethodNames)
	})

	t.Run("drops duplicate methods keeping order", func(t *testing.T) {
		t.Parallel()

		key := operation.FunctionCallAccess("app.near", "", "b", "a", "b", "c", "a")

		assert.Equal(t, []string{"b", "a", "c"}, key.Permission.FunctionCall.MethodNames)
	})
}

func TestFullAccess(t *testing.T) {
	key := operation.FullAccess()

	assert.True(t, key.IsFullAccess())

	withNonce := key.WithNonce(12)
	require.NotNil(t, withNonce.Nonce)
	assert.Equal(t, uint64(12), *withNonce.Nonce)
	assert.Nil(t, key.Nonce)
}
