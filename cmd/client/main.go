package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"GiftKiosk/internal/cli/commands"
	fsrepo "GiftKiosk/internal/cli/repo/fs"
	"GiftKiosk/internal/cli/session"
	"GiftKiosk/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// сессия админа читается с диска один раз на запуск
	ctx = session.WithProvider(ctx, session.Load(fsrepo.NewSessionStore(cfg.SessionDir)))

	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("GiftKiosk CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
