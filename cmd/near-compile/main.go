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

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/near-batch/backend/chain"
	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/models/near"
	"github.com/optakt/near-batch/rpc"
	"github.com/optakt/near-batch/validator"
)

const (
	success = 0
	failure = 1
)

const (
	formatWallet = "wallet"
	formatBorsh  = "borsh"
	formatSign   = "wallet-url"
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagBlockHash string
		flagCallback  string
		flagCode      string
		flagFormat    string
		flagInput     string
		flagLevel     string
		flagNetwork   string
		flagNonce     uint64
		flagPublicKey string
	)

	pflag.StringVar(&flagBlockHash, "block-hash", "", "base58 hash of a recent block to reference (looked up from the node when empty)")
	pflag.StringVar(&flagCallback, "callback", "", "URL the wallet redirects to after signing (wallet-url format only)")
	pflag.StringVarP(&flagCode, "code", "c", "", "contract code for deploy actions without code (zstd compressed when ending in .zst)")
	pflag.StringVarP(&flagFormat, "format", "f", formatWallet, "output format (wallet, borsh or wallet-url)")
	pflag.StringVarP(&flagInput, "input", "i", "batch.json", "path to the JSON batch of wallet transactions (zstd compressed when ending in .zst)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagNetwork, "network", "n", near.Mainnet, "network name or RPC endpoint used to look up nonces and block hashes")
	pflag.Uint64Var(&flagNonce, "nonce", 0, "nonce of the first transaction of each signer (looked up from the node when zero)")
	pflag.StringVarP(&flagPublicKey, "public-key", "k", "", "public key the transactions will be signed with")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	if flagFormat != formatWallet && flagFormat != formatBorsh && flagFormat != formatSign {
		log.Error().Str("format", flagFormat).Msg("invalid output format")
		return failure
	}
	if flagFormat != formatWallet && flagPublicKey == "" {
		log.Error().Str("format", flagFormat).Msg("encoded output requires a public key")
		return failure
	}

	compression := codec.NewZstd(nil, nil)

	// Read the batch.
	data, err := readFile(compression, flagInput)
	if err != nil {
		log.Error().Str("input", flagInput).Err(err).Msg("could not read batch")
		return failure
	}
	var txs []wallet.Transaction
	err = json.Unmarshal(data, &txs)
	if err != nil {
		log.Error().Str("input", flagInput).Err(err).Msg("could not decode batch")
		return failure
	}

	// Fill in the contract code, if given.
	if flagCode != "" {
		code, err := readFile(compression, flagCode)
		if err != nil {
			log.Error().Str("code", flagCode).Err(err).Msg("could not read contract code")
			return failure
		}
		filled := fillCode(txs, code)
		log.Debug().Int("actions", filled).Int("size", len(code)).Msg("contract code filled in")
	}

	err = validator.New().Transactions(txs)
	if err != nil {
		log.Error().Err(err).Msg("invalid batch")
		return failure
	}
	b, err := wallet.Parse(txs)
	if err != nil {
		log.Error().Err(err).Msg("could not parse batch")
		return failure
	}

	if flagFormat == formatWallet {
		normalized, err := wallet.Transactions(b.ToTransactions())
		if err != nil {
			log.Error().Err(err).Msg("could not normalize batch")
			return failure
		}
		output, err := json.MarshalIndent(normalized, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("could not encode batch")
			return failure
		}
		fmt.Println(string(output))
		return success
	}

	// Use the given header, or look it up from the node.
	network := near.Lookup(flagNetwork)
	var headers chain.Headers
	if flagNonce != 0 && flagBlockHash != "" {
		headers = chain.Fixed{Nonce: flagNonce, BlockHash: flagBlockHash}
	} else {
		headers = rpc.New(log, network.RPC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sig
		log.Warn().Msg("aborting")
		cancel()
	}()

	payloads, err := chain.Payloads(ctx, b.ToTransactions(), flagPublicKey, headers)
	if err != nil {
		log.Error().Err(err).Msg("could not encode batch")
		return failure
	}

	if flagFormat == formatSign {
		transactions := make([][]byte, 0, len(payloads))
		for _, payload := range payloads {
			transactions = append(transactions, payload.Data)
		}
		link, err := network.SignURL(transactions, flagCallback)
		if err != nil {
			log.Error().Str("network", flagNetwork).Err(err).Msg("could not build wallet URL")
			return failure
		}
		fmt.Println(link)
		return success
	}

	for _, payload := range payloads {
		fmt.Printf("%s %d %s %s\n", payload.SignerID, payload.Nonce, payload.Hash, base64.StdEncoding.EncodeToString(payload.Data))
	}

	return success
}

func readFile(compression *codec.Zstd, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return data, nil
	}
	data, err = compression.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("could not decompress file: %w", err)
	}
	return data, nil
}

func fillCode(txs []wallet.Transaction, code []byte) int {
	filled := 0
	for _, tx := range txs {
		for i, action := range tx.Actions {
			params, ok := action.Params.(wallet.DeployContractParams)
			if !ok || len(params.Code) > 0 {
				continue
			}
			params.Code = code
			tx.Actions[i].Params = params
			filled++
		}
	}
	return filled
}
