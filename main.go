package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/b0bbywan/go-mprisctl/backend"
	"github.com/b0bbywan/go-mprisctl/cli"
)

func main() {
	// Cancel pending bus calls on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Main(ctx, os.Args[1:], os.Stdout, os.Stderr, backend.New)
	cancel()
	os.Exit(code)
}
