package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"ftxrest/config"
	"ftxrest/internal/ftx/collector"
	"ftxrest/internal/ftx/marketmeta"
	"ftxrest/internal/ftx/memorystore"
	"ftxrest/internal/ftx/snapshot"
	"ftxrest/logger"
	"ftxrest/pkg/ftx"
	"ftxrest/pkg/ftx/endpoints"
	"ftxrest/pkg/storage/memory"
	"ftxrest/pkg/storage/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const usage = `usage: ftxctl [flags] <command>

commands:
  markets          list enabled markets
  market <name>    show one market and the top of its order book
  account          show account information and open positions
  sync             archive fills and funding payments

flags:
`

type app struct {
	cfg    *config.Config
	log    *zap.Logger
	client *ftx.Client
}

func main() {
	configPath := pflag.StringP("config", "c", "", "config file (default: search ../config/config.yaml)")
	depth := pflag.Int("depth", 5, "order book depth for the market command")
	dryRun := pflag.Bool("dry-run", false, "sync into memory instead of postgres")
	daemon := pflag.Bool("daemon", false, "keep syncing after every daily market refresh")
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// viper config
	var cfg *config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFrom(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		cfg = config.Load()
	}

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	creds, err := cfg.FTX.Credentials(ctx, nil)
	if err != nil {
		log.Fatal("failed to resolve credentials", zap.Error(err))
	}

	client, err := ftx.NewClient(creds, ftx.ClientConfig{
		BaseURL: cfg.FTX.REST.BaseURL,
		Timeout: cfg.FTX.REST.Timeout,
		Logger:  log,
	})
	if err != nil {
		log.Fatal("failed to create client", zap.Error(err))
	}

	a := &app{cfg: cfg, log: log, client: client}

	switch cmd := pflag.Arg(0); cmd {
	case "markets":
		err = a.markets(ctx)
	case "market":
		if pflag.NArg() < 2 {
			pflag.Usage()
			os.Exit(2)
		}
		err = a.market(ctx, pflag.Arg(1), *depth)
	case "account":
		err = a.account(ctx)
	case "sync":
		err = a.sync(ctx, *dryRun, *daemon)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		pflag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal("command failed", zap.String("command", pflag.Arg(0)), zap.Error(err))
	}
}

func (a *app) markets(ctx context.Context) error {
	markets, err := ftx.Fetch[[]endpoints.Market](ctx, a.client, endpoints.GetMarkets{}, 0)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tLAST\tVOLUME 24H (USD)")
	for _, m := range markets {
		if !m.Enabled {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, m.Type, nullString(m.Last.Decimal.String(), m.Last.Valid), nullString(m.VolumeUsd24h.Decimal.StringFixed(0), m.VolumeUsd24h.Valid))
	}
	return w.Flush()
}

func (a *app) market(ctx context.Context, name string, depth int) error {
	getMarket, err := endpoints.NewGetMarket(name)
	if err != nil {
		return err
	}
	getBook, err := endpoints.NewGetOrderBook(name, depth)
	if err != nil {
		return err
	}

	m, err := ftx.Fetch[endpoints.Market](ctx, a.client, getMarket, 0)
	if err != nil {
		return err
	}
	book, err := ftx.Fetch[endpoints.OrderBook](ctx, a.client, getBook, 0)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s) last=%s tick=%s step=%s\n", m.Name, m.Type,
		nullString(m.Last.Decimal.String(), m.Last.Valid), m.PriceIncrement, m.SizeIncrement)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "BID SIZE\tBID\tASK\tASK SIZE\t")
	for i := 0; i < len(book.Bids) || i < len(book.Asks); i++ {
		var bid, bidSize, ask, askSize string
		if i < len(book.Bids) {
			bid, bidSize = book.Bids[i][0].String(), book.Bids[i][1].String()
		}
		if i < len(book.Asks) {
			ask, askSize = book.Asks[i][0].String(), book.Asks[i][1].String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", bidSize, bid, ask, askSize)
	}
	return w.Flush()
}

func (a *app) account(ctx context.Context) error {
	info, err := ftx.Fetch[endpoints.AccountInformation](ctx, a.client, endpoints.GetAccountInformation{}, 0)
	if err != nil {
		return err
	}
	positions, err := ftx.Fetch[[]endpoints.Position](ctx, a.client, endpoints.GetPositions{}, 0)
	if err != nil {
		return err
	}

	fmt.Printf("%s collateral=%s free=%s leverage=%d\n", info.Username, info.Collateral, info.FreeCollateral, info.Leverage)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FUTURE\tSIDE\tNET SIZE\tENTRY")
	for _, p := range positions {
		if p.Size.IsZero() {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Future, p.Side, p.NetSize, nullString(p.EntryPrice.Decimal.String(), p.EntryPrice.Valid))
	}
	return w.Flush()
}

func (a *app) sync(ctx context.Context, dryRun, daemon bool) error {
	if !a.client.HasCredentials() {
		return ftx.ErrAuthRequired
	}

	var archive collector.Archive
	if dryRun {
		archive = memory.NewArchive()
	} else {
		dsn, err := a.cfg.Postgres.DSN(ctx, a.cfg.Log.Environment, nil)
		if err != nil {
			return err
		}
		pg, err := postgres.Initialize(ctx, a.cfg.Postgres, dsn, "")
		if err != nil {
			return err
		}
		defer pg.Close()
		archive = pg
	}

	account := a.cfg.FTX.Subaccount
	if account == "" {
		account = "main"
	}

	ccfg := a.cfg.Collector
	store := memorystore.NewMarketStore()
	loader := &snapshot.MarketLoader{
		Client:  a.client,
		Timeout: a.cfg.FTX.REST.Timeout,
		Type:    endpoints.MarketType(ccfg.MarketType),
		Allow:   ccfg.Markets,
		Logger:  a.log,
	}
	c := &collector.Collector{
		Client:      a.client,
		Archive:     archive,
		Markets:     store,
		Account:     account,
		Concurrency: ccfg.Concurrency,
		Limiter:     rate.NewLimiter(rate.Limit(ccfg.RatePerSec), 1),
		Timeout:     a.cfg.FTX.REST.Timeout,
		Logger:      a.log,
	}

	runSync := func() error {
		since := time.Now().Add(-ccfg.Lookback)
		fills, err := c.SyncFills(ctx, since)
		if err != nil {
			a.log.Warn("fill sync finished with errors", zap.Error(err))
		}
		funding, ferr := c.SyncFundingPayments(ctx, since)
		if ferr != nil {
			a.log.Warn("funding sync failed", zap.Error(ferr))
		}
		a.log.Info("sync done",
			zap.Int("markets", fills.Markets),
			zap.Int64("fills", fills.Inserted),
			zap.Int64("funding", funding.Inserted))
		if err != nil {
			return err
		}
		return ferr
	}

	if !daemon {
		ch := make(chan string, 100)
		go func() {
			_ = loader.LoadMarkets(ctx, ch)
		}()
		store.Replace(ch)
		return runSync()
	}

	refresher := &marketmeta.DailyRefresher{
		Load:   marketmeta.DefaultLoadFn(loader),
		Logger: a.log,
	}
	refresher.Start(ctx, func(ch <-chan string) {
		n := store.Replace(ch)
		a.log.Info("markets refreshed", zap.Int("count", n))
		_ = runSync()
	})

	<-ctx.Done()
	return nil
}

func nullString(s string, valid bool) string {
	if !valid {
		return "-"
	}
	return s
}
