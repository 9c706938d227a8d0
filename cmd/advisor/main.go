package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"StockAdvisor/internal/advisor"
	"StockAdvisor/internal/analyzer"
	"StockAdvisor/internal/collector"
	"StockAdvisor/internal/config"
	"StockAdvisor/internal/history"
	"StockAdvisor/internal/projector"
	"StockAdvisor/internal/report"
	"StockAdvisor/internal/resolver"
	"StockAdvisor/internal/scheduler"
	"StockAdvisor/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := flag.String("config", "configs/config.yaml", "path to config file")
	amount := flag.String("amount", "", "investment amount for a projection")
	years := flag.String("years", "", "investment horizon in years for a projection")
	watch := flag.Bool("watch", false, "run as a daemon refreshing stored snapshots")
	flag.Parse()

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewQuoteAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			st = store.NewNoopStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewNoopStore()
	}

	an := analyzer.New(fetcher)
	res := resolver.New(fetcher, cfg.Market.Exchanges)
	hist := history.NewStore()
	adv := advisor.New(res, an, st, hist)

	if *watch {
		runWatch(cfg, an, st)
		return
	}

	session := hist.NewSession()
	if name := strings.TrimSpace(strings.Join(flag.Args(), " ")); name != "" {
		runOnce(adv, session, name, *amount, *years)
		return
	}
	runInteractive(adv, session)
}

// runWatch starts the cron refresher and blocks until SIGINT/SIGTERM.
func runWatch(cfg *config.Config, an *analyzer.Analyzer, st store.Store) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, an, st)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		go sched.RunRefreshNow()
	}

	log.Println("[INFO] StockAdvisor watching. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
}

// runOnce performs a single lookup, with an optional projection.
func runOnce(adv *advisor.Advisor, session, name, amount, years string) {
	if amount != "" || years != "" {
		res, proj, err := adv.Project(session, name, amount, years)
		if err != nil {
			fmt.Println(renderErr(err))
			os.Exit(1)
		}
		fmt.Print(report.FormatStockReport(res))
		fmt.Print(report.FormatProjection(res.Profile.Name, proj))
		return
	}
	res, err := adv.Lookup(session, name)
	if err != nil {
		fmt.Println(renderErr(err))
		os.Exit(1)
	}
	fmt.Print(report.FormatStockReport(res))
}

// runInteractive reads company names and commands from stdin until EOF or
// quit. One search-history session spans the whole run.
func runInteractive(adv *advisor.Advisor, session string) {
	fmt.Println("📊 Live Stock Advisor (India)")
	fmt.Println("Enter a company name to analyze its stock performance.")
	fmt.Println("Commands: history, clear, invest <amount> <years>, quit")

	var lastCompany string
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return
		case "history":
			fmt.Print(report.FormatHistory(adv.SearchHistory(session)))
		case "clear":
			adv.ClearHistory(session)
			fmt.Println("History cleared.")
		case "invest":
			if len(fields) != 3 {
				fmt.Println("Usage: invest <amount> <years>")
				continue
			}
			if lastCompany == "" {
				fmt.Println("Look up a company first.")
				continue
			}
			res, proj, err := adv.Project(session, lastCompany, fields[1], fields[2])
			if err != nil {
				fmt.Println(renderErr(err))
				continue
			}
			fmt.Print(report.FormatProjection(res.Profile.Name, proj))
		default:
			res, err := adv.Lookup(session, line)
			if err != nil {
				fmt.Println(renderErr(err))
				continue
			}
			lastCompany = line
			fmt.Print(report.FormatStockReport(res))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[ERROR] read stdin: %v", err)
	}
}

// renderErr maps each failure kind to its distinct user-facing message.
func renderErr(err error) string {
	switch {
	case errors.Is(err, advisor.ErrEmptyQuery):
		return "❌ Please enter a company name."
	case errors.Is(err, advisor.ErrUnsupportedExchange):
		return "❌ Only Indian stocks (NSE/BSE) are supported."
	case errors.Is(err, advisor.ErrNotFound):
		return "❌ Stock not found. Try another name."
	case errors.Is(err, advisor.ErrDataUnavailable):
		return "❌ Unable to fetch stock data."
	case errors.Is(err, projector.ErrInvalidInput):
		return fmt.Sprintf("❌ %v", err)
	default:
		return fmt.Sprintf("❌ %v", err)
	}
}
