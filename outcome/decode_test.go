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

package outcome_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/outcome"
	"github.com/optakt/near-batch/testing/mocks"
)

func TestDecodeValue(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		o := mocks.GenericOutcome(map[string]string{"balance": "1000"})

		var got map[string]string
		ok, err := outcome.DecodeValue(o, nil, &got)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, map[string]string{"balance": "1000"}, got)
	})

	t.Run("round trips JSON values", func(t *testing.T) {
		t.Parallel()

		values := []interface{}{
			map[string]interface{}{"a": []interface{}{"b", float64(1)}},
			[]interface{}{true, nil, "x"},
			"hello",
			float64(42.5),
			false,
			nil,
		}

		for _, value := range values {
			data, err := codec.JSON{}.Encode(value)
			require.NoError(t, err)

			var got interface{}
			ok, err := outcome.DecodeValue(mocks.GenericRawOutcome(data), codec.JSON{}, &got)

			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, value, got)
		}
	})

	t.Run("uses given decoder", func(t *testing.T) {
		t.Parallel()

		dec := mocks.BaselineDecoder(t)
		dec.DecodeFunc = func(data []byte, value interface{}) error {
			assert.Equal(t, mocks.GenericBytes, data)
			*(value.(*string)) = "decoded"
			return nil
		}

		var got string
		ok, err := outcome.DecodeValue(mocks.GenericRawOutcome(mocks.GenericBytes), dec, &got)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "decoded", got)
	})

	t.Run("returns no value for empty success value", func(t *testing.T) {
		t.Parallel()

		dec := mocks.BaselineDecoder(t)
		dec.DecodeFunc = func([]byte, interface{}) error {
			t.Fatal("decoder should not be called")
			return nil
		}

		var got string
		ok, err := outcome.DecodeValue(mocks.GenericRawOutcome(nil), dec, &got)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("handles failure status", func(t *testing.T) {
		t.Parallel()

		var got string
		ok, err := outcome.DecodeValue(mocks.GenericFailedOutcome(), nil, &got)

		require.Error(t, err)
		assert.False(t, ok)

		var perr failure.ParseOutcome
		require.ErrorAs(t, err, &perr)
		assert.Contains(t, perr.Failure, "ActionError")
	})

	t.Run("handles missing success value", func(t *testing.T) {
		t.Parallel()

		o := mocks.GenericOutcome("ok")
		receiptID := mocks.GenericHash
		o.Status = outcome.Status{SuccessReceiptID: &receiptID}

		var got string
		_, err := outcome.DecodeValue(o, nil, &got)

		assert.ErrorAs(t, err, &failure.ParseOutcome{})
	})

	t.Run("handles invalid base64", func(t *testing.T) {
		t.Parallel()

		o := mocks.GenericOutcome("ok")
		invalid := "not base64!"
		o.Status.SuccessValue = &invalid

		var got string
		_, err := outcome.DecodeValue(o, nil, &got)

		assert.ErrorAs(t, err, &failure.ParseOutcome{})
	})

	t.Run("handles decoder failure", func(t *testing.T) {
		t.Parallel()

		dec := mocks.BaselineDecoder(t)
		dec.DecodeFunc = func([]byte, interface{}) error {
			return mocks.GenericError
		}

		var got string
		ok, err := outcome.DecodeValue(mocks.GenericOutcome("ok"), dec, &got)

		assert.ErrorIs(t, err, mocks.GenericError)
		assert.False(t, ok)
	})
}

func TestStatus_JSON(t *testing.T) {
	t.Run("decodes success value", func(t *testing.T) {
		t.Parallel()

		var status outcome.Status
		err := json.Unmarshal([]byte(`{"SuccessValue":"ImhlbGxvIg=="}`), &status)

		require.NoError(t, err)
		require.NotNil(t, status.SuccessValue)
		assert.Equal(t, "ImhlbGxvIg==", *status.SuccessValue)
		assert.False(t, status.Failed())
	})

	t.Run("decodes failure", func(t *testing.T) {
		t.Parallel()

		var status outcome.Status
		err := json.Unmarshal([]byte(`{"Failure":{"ActionError":{}}}`), &status)

		require.NoError(t, err)
		assert.True(t, status.Failed())
		assert.Nil(t, status.SuccessValue)
	})

	t.Run("decodes unknown status", func(t *testing.T) {
		t.Parallel()

		var status outcome.Status
		err := json.Unmarshal([]byte(`"Unknown"`), &status)

		require.NoError(t, err)
		assert.True(t, status.Unknown)

		data, err := json.Marshal(status)
		require.NoError(t, err)
		assert.Equal(t, `"Unknown"`, string(data))
	})

	t.Run("handles invalid status name", func(t *testing.T) {
		t.Parallel()

		var status outcome.Status
		err := json.Unmarshal([]byte(`"Pending"`), &status)

		assert.Error(t, err)
	})

	t.Run("keeps empty success value", func(t *testing.T) {
		t.Parallel()

		empty := ""
		data, err := json.Marshal(outcome.Status{SuccessValue: &empty})

		require.NoError(t, err)
		assert.JSONEq(t, `{"SuccessValue":""}`, string(data))
	})
}
