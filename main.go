package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/pumpernickelhq/bakery-assistant/bakery/inquiry"
	"github.com/pumpernickelhq/bakery-assistant/bakery/intake"
	"github.com/pumpernickelhq/bakery-assistant/bakery/orderstore"
	configx "github.com/pumpernickelhq/bakery-assistant/pkg/config"
	genaix "github.com/pumpernickelhq/bakery-assistant/pkg/genai"
	_ "github.com/pumpernickelhq/bakery-assistant/pkg/logger/autoload"
	serverx "github.com/pumpernickelhq/bakery-assistant/server"
)

type AppConfig struct {
	OrderCSVPath string `envconfig:"ORDER_CSV_PATH" default:"orders.csv"`
	PostgresDSN  string `envconfig:"POSTGRES_DSN"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("")

	genaiCfg := configx.MustNew[genaix.Config]("GENAI")
	genaiClient := genaix.MustNew(*genaiCfg)

	store := newOrderStore(ctx, appCfg)
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	parser := intake.NewParser(genaiClient, store)
	inquiries := inquiry.NewService(genaiClient)

	srvCfg := configx.MustNew[serverx.Config]("MCP")
	srv, err := serverx.New(serverx.Deps{
		Parser:    parser,
		Inquiries: inquiries,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build MCP server")
	}

	log.Info().
		Str("addr", srvCfg.Addr()).
		Str("path", srvCfg.Path).
		Msg("bakery MCP server listening")
	if err := serverx.Start(*srvCfg, srv); err != nil {
		log.Fatal().Err(err).Msg("MCP server stopped")
	}
}

// newOrderStore selects Postgres when a DSN is configured, otherwise the
// flat CSV file.
func newOrderStore(ctx context.Context, cfg *AppConfig) orderstore.Store {
	if cfg.PostgresDSN != "" {
		store, err := orderstore.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres order store")
		}
		return store
	}

	store := orderstore.NewCSVStore(cfg.OrderCSVPath)
	if err := store.LoadError(); err != nil {
		log.Error().Err(err).Str("path", cfg.OrderCSVPath).
			Msg("order file unreadable, starting with an empty table")
	}
	return store
}
