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
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/models/near"
	"github.com/optakt/near-batch/models/view"
	"github.com/optakt/near-batch/rpc"
	"github.com/optakt/near-batch/transactor"
	"github.com/optakt/near-batch/validator"
)

const (
	success = 0
	failure = 1
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
		flagArgs     string
		flagContract string
		flagFinality string
		flagHash     string
		flagHeight   uint64
		flagLevel    string
		flagMethod   string
		flagNetwork  string
		flagRaw      bool
		flagTimeout  time.Duration
	)

	pflag.StringVarP(&flagArgs, "args", "a", "", "JSON arguments of the method (empty object when omitted)")
	pflag.StringVarP(&flagContract, "contract", "c", "", "account ID of the contract")
	pflag.StringVar(&flagFinality, "finality", view.FinalityFinal, "finality of the block to query (optimistic, near-final or final)")
	pflag.StringVar(&flagHash, "hash", "", "hash of the block to query")
	pflag.Uint64VarP(&flagHeight, "height", "h", 0, "height of the block to query")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMethod, "method", "m", "", "name of the view method")
	pflag.StringVarP(&flagNetwork, "network", "n", near.Mainnet, "network name or RPC endpoint of the NEAR node")
	pflag.BoolVarP(&flagRaw, "raw", "r", false, "print the raw result as base64 instead of JSON")
	pflag.DurationVar(&flagTimeout, "timeout", rpc.DefaultConfig.Timeout, "timeout for requests to the NEAR node")

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

	// A height or hash overrides the finality.
	block := view.Block{Finality: flagFinality}
	switch {
	case flagHeight != 0 && flagHash != "":
		log.Error().Msg("height and hash are mutually exclusive")
		return failure
	case flagHeight != 0:
		block = view.AtHeight(flagHeight)
	case flagHash != "":
		block = view.AtHash(flagHash)
	}

	var args interface{}
	if flagArgs != "" {
		if !json.Valid([]byte(flagArgs)) {
			log.Error().Str("args", flagArgs).Msg("arguments are not valid JSON")
			return failure
		}
		args = json.RawMessage(flagArgs)
	}

	network := near.Lookup(flagNetwork)
	client := rpc.New(log, network.RPC, rpc.WithTimeout(flagTimeout))
	tx := transactor.New(log, nil, client, client, validator.New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sig
		log.Warn().Msg("aborting")
		cancel()
	}()

	options := []func(*transactor.ViewConfig){transactor.WithBlock(block)}
	if flagRaw {
		var result []byte
		options = append(options, transactor.WithViewDecoder(codec.DecoderFunc(func(data []byte, _ interface{}) error {
			result = data
			return nil
		})))
		err = tx.View(ctx, flagContract, flagMethod, args, &result, options...)
		if err != nil {
			log.Error().Err(err).Msg("could not execute view call")
			return failure
		}
		fmt.Println(base64.StdEncoding.EncodeToString(result))
		return success
	}

	var result json.RawMessage
	err = tx.View(ctx, flagContract, flagMethod, args, &result, options...)
	if err != nil {
		log.Error().Err(err).Msg("could not execute view call")
		return failure
	}

	fmt.Println(string(result))

	return success
}
