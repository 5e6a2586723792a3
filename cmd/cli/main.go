package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/studentsapi/internal/buildinfo"
	"github.com/dmitrijs2005/studentsapi/internal/client/cli"
	"github.com/dmitrijs2005/studentsapi/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
