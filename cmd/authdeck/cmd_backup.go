package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/HerbHall/authdeck/internal/backup"
	"github.com/HerbHall/authdeck/internal/config"
	"github.com/HerbHall/authdeck/internal/server"
	"go.uber.org/zap"
)

func runBackup(args []string) {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	output := fs.String("o", "", "archive path (default authdeck-backup-<timestamp>.tar.gz)")
	_ = fs.Parse(args)

	archivePath := *output
	if archivePath == "" {
		archivePath = fmt.Sprintf("authdeck-backup-%s.tar.gz", time.Now().UTC().Format("20060102-150405"))
	}

	ctx := context.Background()
	cfg := mustLoadConfig(*configPath)
	st, _, closePrefs, err := openPrefs(ctx, cfg.Prefs, zap.NewNop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "backup failed: %v\n", err)
		os.Exit(1)
	}
	defer closePrefs()

	m, err := backup.Backup(ctx, st, archivePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backup failed: %v\n", err)
		closePrefs()
		os.Exit(1)
	}
	fmt.Printf("wrote %d preferences from %s backend to %s\n", m.Settings, cfg.Prefs.Backend, archivePath)
}

func runRestore(args []string) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	force := fs.Bool("force", false, "overwrite preferences that already exist")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: authdeck restore [-config FILE] [-force] ARCHIVE")
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := mustLoadConfig(*configPath)
	st, _, closePrefs, err := openPrefs(ctx, cfg.Prefs, zap.NewNop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "restore failed: %v\n", err)
		os.Exit(1)
	}
	defer closePrefs()

	m, err := backup.Restore(ctx, fs.Arg(0), st, *force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "restore failed: %v\n", err)
		closePrefs()
		os.Exit(1)
	}
	fmt.Printf("restored %d preferences (written by authdeck %s at %s)\n",
		m.Settings, m.Version, m.CreatedAt.Format(time.RFC3339))
}

func mustLoadConfig(path string) *config.Config {
	v, err := server.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	return cfg
}
