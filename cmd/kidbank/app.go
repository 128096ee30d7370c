package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dworin/KidBank/internal/ledger"
	"github.com/dworin/KidBank/internal/printer"
)

// session owns the resources one command invocation needs: config, an open
// engine over the store, and the print spooler.
type session struct {
	cfg     *ledger.AppConfig
	service ledger.Service
	spooler *printer.Spooler
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := ledger.LoadConfig()

	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DBConnStr)

	if err != nil {
		return nil, fmt.Errorf("parse DB config failed: %w", err)
	}

	poolConfig.MaxConns = cfg.DBMaxConnections

	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)

	if err != nil {
		return nil, fmt.Errorf("create DB pool failed: %w", err)
	}

	idProvider, err := ledger.NewIDProvider(cfg.NodeID)

	if err != nil {
		dbPool.Close()
		return nil, err
	}

	service, err := ledger.New(
		dbPool,
		idProvider,
		ledger.NewAccountNumberProvider(),
		ledger.NewTimeProvider(),
		cfg.StoreTimeout,
	)

	if err != nil {
		dbPool.Close()
		return nil, err
	}

	return &session{
		cfg:     cfg,
		service: service,
		spooler: printer.New(cfg.PrintCommand, cfg.PrintTimeout),
	}, nil
}

func (s *session) close() {
	s.service.Close()
}
