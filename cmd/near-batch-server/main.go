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
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/near-batch/api/rest"
	"github.com/optakt/near-batch/cache"
	"github.com/optakt/near-batch/metrics"
	"github.com/optakt/near-batch/models/near"
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
		flagAwaitTimeout time.Duration
		flagCacheSize    string
		flagLevel        string
		flagMetrics      string
		flagNetwork      string
		flagPort         uint16
		flagTimeout      time.Duration
	)

	pflag.DurationVar(&flagAwaitTimeout, "await-timeout", transactor.DefaultConfig.AwaitTimeout, "maximum time to wait for a transaction outcome")
	pflag.StringVar(&flagCacheSize, "cache-size", "100MB", "maximum size of the view call cache")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics are exposed when left empty)")
	pflag.StringVarP(&flagNetwork, "network", "n", near.Mainnet, "network name or RPC endpoint of the NEAR node")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to host the API on")
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
	elog := lecho.From(log)

	var size datasize.ByteSize
	err = size.UnmarshalText([]byte(flagCacheSize))
	if err != nil {
		log.Error().Str("cache_size", flagCacheSize).Err(err).Msg("could not parse cache size")
		return failure
	}

	// The client talks to the JSON-RPC interface of the node; every call to it
	// is timed when metrics are enabled.
	network := near.Lookup(flagNetwork)
	client := rpc.New(log, network.RPC, rpc.WithTimeout(flagTimeout))
	var query transactor.Querier = client
	var fetch transactor.Fetcher = client
	reg := prometheus.NewRegistry()
	if flagMetrics != "" {
		query = metrics.NewQuerier(query, metrics.NewTime(reg, "querier"))
		fetch = metrics.NewFetcher(fetch, metrics.NewTime(reg, "fetcher"))
	}

	// View calls pinned to a specific block always return the same result, so
	// they are cached in memory.
	cached, err := cache.New(query, cache.WithSize(size.Bytes()))
	if err != nil {
		log.Error().Err(err).Msg("could not initialize view cache")
		return failure
	}
	defer cached.Close()

	// The server does not hold any keys, so it can compile and inspect
	// transactions, but not submit them.
	validate := validator.New()
	tx := transactor.New(log, nil, cached, fetch, validate,
		transactor.WithAwaitTimeout(flagAwaitTimeout),
	)
	ctrl := rest.NewController(tx, validate, client)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.POST("/compile", ctrl.Compile)
	server.POST("/view", ctrl.View)
	server.GET("/transactions/:hash", ctrl.Outcome)

	var mserver *metrics.Server
	if flagMetrics != "" {
		mserver = metrics.NewServer(log, flagMetrics, reg)
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("network", network.RPC).Msg("NEAR Batch Server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("NEAR Batch Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("NEAR Batch Server stopped")
	}()
	if mserver != nil {
		go func() {
			err := mserver.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("NEAR Batch Server stopping")
	case <-done:
		log.Info().Msg("NEAR Batch Server done")
	case <-failed:
		log.Warn().Msg("NEAR Batch Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down NEAR Batch Server")
		return failure
	}
	if mserver != nil {
		err = mserver.Stop(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
			return failure
		}
	}

	return success
}
