package main

import (
	"context"
	"log"
	"os"

	"github.com/outstagram/outstagram-cli/internal/buildinfo"
	"github.com/outstagram/outstagram-cli/internal/client/cli"
	"github.com/outstagram/outstagram-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
