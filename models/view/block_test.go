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

package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/near-batch/models/view"
)

func TestBlock_Params(t *testing.T) {
	tests := []struct {
		name   string
		block  view.Block
		want   map[string]interface{}
		pinned bool
	}{
		{name: "zero value", block: view.Block{}, want: map[string]interface{}{"finality": "final"}},
		{name: "optimistic", block: view.Optimistic(), want: map[string]interface{}{"finality": "optimistic"}},
		{name: "doomslug", block: view.Doomslug(), want: map[string]interface{}{"finality": "near-final"}},
		{name: "final", block: view.Final(), want: map[string]interface{}{"finality": "final"}},
		{name: "earliest", block: view.Earliest(), want: map[string]interface{}{"sync_checkpoint": "earliest_available"}},
		{name: "genesis", block: view.Genesis(), want: map[string]interface{}{"sync_checkpoint": "genesis"}},
		{name: "height", block: view.AtHeight(42), want: map[string]interface{}{"block_id": uint64(42)}, pinned: true},
		{name: "hash", block: view.AtHash("9xYz"), want: map[string]interface{}{"block_id": "9xYz"}, pinned: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.block.Params())
			assert.Equal(t, test.pinned, test.block.Pinned())
			assert.NotEmpty(t, test.block.String())
		})
	}
}
