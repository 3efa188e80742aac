// Package main starts the marketplace admin console.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	admincmd "github.com/louisbranch/farmhouse.admin/internal/cmd/admin"
	"github.com/louisbranch/farmhouse.admin/internal/platform/config"
)

func main() {
	cfg, err := admincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = admincmd.Run(ctx, cfg)
	stop()
	if err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
