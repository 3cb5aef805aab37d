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

package view

import (
	"fmt"
)

// Finality levels and sync checkpoints a view query can target.
const (
	FinalityOptimistic = "optimistic"
	FinalityDoomslug   = "near-final"
	FinalityFinal      = "final"

	CheckpointEarliest = "earliest_available"
	CheckpointGenesis  = "genesis"
)

// Block selects the chain state a view query runs against. Exactly one of
// its fields is set; the zero value targets final state.
type Block struct {
	Finality   string
	Checkpoint string
	Height     *uint64
	Hash       string
}

func Optimistic() Block { return Block{Finality: FinalityOptimistic} }

func Doomslug() Block { return Block{Finality: FinalityDoomslug} }

func Final() Block { return Block{Finality: FinalityFinal} }

func Earliest() Block { return Block{Checkpoint: CheckpointEarliest} }

func Genesis() Block { return Block{Checkpoint: CheckpointGenesis} }

// AtHeight targets the block at the given height.
func AtHeight(height uint64) Block {
	return Block{Height: &height}
}

// AtHash targets the block with the given base58-encoded hash.
func AtHash(hash string) Block {
	return Block{Hash: hash}
}

// Pinned reports whether the block reference designates one specific block,
// whose state can never change.
func (b Block) Pinned() bool {
	return b.Height != nil || b.Hash != ""
}

// Params returns the block reference as JSON-RPC request parameters.
func (b Block) Params() map[string]interface{} {
	switch {
	case b.Height != nil:
		return map[string]interface{}{"block_id": *b.Height}
	case b.Hash != "":
		return map[string]interface{}{"block_id": b.Hash}
	case b.Checkpoint != "":
		return map[string]interface{}{"sync_checkpoint": b.Checkpoint}
	case b.Finality != "":
		return map[string]interface{}{"finality": b.Finality}
	default:
		return map[string]interface{}{"finality": FinalityFinal}
	}
}

func (b Block) String() string {
	switch {
	case b.Height != nil:
		return fmt.Sprintf("height %d", *b.Height)
	case b.Hash != "":
		return fmt.Sprintf("hash %s", b.Hash)
	case b.Checkpoint != "":
		return b.Checkpoint
	case b.Finality != "":
		return b.Finality
	default:
		return FinalityFinal
	}
}
