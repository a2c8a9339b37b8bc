package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	searchcontroller "bookcafe-search/internal/client/search-controller"
	terminalsurface "bookcafe-search/internal/client/terminal-surface"
	"bookcafe-search/internal/common/config"
	"bookcafe-search/internal/common/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a config YAML file (default: configs/config.yaml)")
	badge := flag.String("badge", "", "override the data source badge: on or off")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the surface
	zapLog := logger.New(cfg.Logging.Level, "console", "stderr")
	defer zapLog.Sync()
	log := logger.ForComponent(logger.NewZapAdapter(zapLog), searchcontroller.ComponentName)

	ctrlCfg := searchcontroller.FromAppConfig(cfg.Client)
	switch strings.ToLower(*badge) {
	case "on":
		ctrlCfg.ShowDataSourceBadge = true
	case "off":
		ctrlCfg.ShowDataSourceBadge = false
	case "":
	default:
		zapLog.Fatal("invalid -badge value, want on or off", zap.String("badge", *badge))
	}

	surface := terminalsurface.New(os.Stdout, &terminalsurface.Config{NoColor: *noColor})
	ctrl := searchcontroller.NewController(ctrlCfg, searchcontroller.NewHTTPTransport(ctrlCfg), surface, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLog.Info("Search client ready", zap.String("endpoint", ctrlCfg.Endpoint))
	fmt.Fprintln(os.Stdout, "검색어를 입력하세요 (Ctrl+D 종료)")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		case <-ctrl.Submit(ctx, scanner.Text()):
		}
		fmt.Fprintln(os.Stdout)
	}
	if err := scanner.Err(); err != nil {
		zapLog.Error("reading input failed", zap.Error(err))
	}
	ctrl.Wait()
}
