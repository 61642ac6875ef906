package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"adchecker/config"

	"github.com/ternarybob/banner"
)

// Set at build time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

func printBanner(cfg *config.Config, logger *slog.Logger) {
	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	hr := lineColor + strings.Repeat("═", 60) + banner.ColorReset

	serviceName := cfg.Env.ServiceName
	if serviceName == "" {
		serviceName = "adchecker"
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	fmt.Fprintf(os.Stderr, "%s  %s%s\n", textColor, serviceName, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "%s  Meta ad account dashboard API%s\n\n", textColor, banner.ColorReset)

	kvLines := [][2]string{
		{"Version", version},
		{"Commit", commit},
		{"Environment", cfg.Env.Env},
		{"Port", fmt.Sprint(cfg.HTTP.Port)},
		{"Storage", cfg.Storage.Driver},
		{"Graph API", cfg.Meta.GraphURL + "/" + cfg.Meta.APIVersion},
		{"Frontend", cfg.Frontend.URL},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-14s %s%s\n", textColor, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)

	logger.Info("Application starting",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("environment", cfg.Env.Env),
		slog.String("storage", cfg.Storage.Driver),
	)
}
