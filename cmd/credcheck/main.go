package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/credcheck/internal/buildinfo"
	"github.com/dmitrijs2005/credcheck/internal/cli"
	"github.com/dmitrijs2005/credcheck/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	cfg := config.LoadConfig(args)
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	code := app.Run(ctx, args)
	stop()
	os.Exit(code)

}
