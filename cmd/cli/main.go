package main

import (
	"context"
	"log"
	"os"

	"github.com/Aneeb1231/rxease/internal/buildinfo"
	"github.com/Aneeb1231/rxease/internal/client/cli"
	"github.com/Aneeb1231/rxease/internal/client/config"
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
