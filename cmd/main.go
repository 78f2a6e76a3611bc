// Package bankapi provides the API to manage multi-asset retail bank
// accounts: fiat accounts, crypto wallets and stock positions.
package main

import (
	"context"
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/nexa-bank/cmd/httpserver"
	"github.com/go-petr/nexa-bank/internal/middleware"
	"github.com/go-petr/nexa-bank/internal/seed"
	"github.com/go-petr/nexa-bank/pkg/configpkg"
	"github.com/go-petr/nexa-bank/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	seedFlag := flag.Bool("seed", false, "seed demo users and the stock catalog before serving")
	flag.Parse()

	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	if *seedFlag {
		ctx := logger.WithContext(context.Background())
		if err := seed.Run(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("cannot seed database")
		}
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("BANK API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
