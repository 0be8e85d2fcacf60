package main

import (
	"github.com/pescuma/bdcrime/lib/config"
	"github.com/pescuma/bdcrime/lib/consoles"
	"github.com/pescuma/bdcrime/lib/server"
	"github.com/pescuma/bdcrime/lib/storages"
)

type ServeCmd struct {
	Dataset string `short:"d" help:"Imported dataset name or CSV file. Default is taken from the configuration."`
	Port    uint   `help:"Port to listen to. Default is taken from the configuration (2427)."`
}

func (c *ServeCmd) Run(ctx *context) error {
	err := ctx.ws.MergeConfig(&config.Config{Server: config.ServerConfig{Port: c.Port}})
	if err != nil {
		return err
	}

	dash, err := ctx.ws.Dashboard(c.Dataset)
	if err != nil {
		return err
	}

	return ctx.ws.Execute(func(console consoles.Console, _ storages.Storage) error {
		return server.Run(console, dash, &server.Options{
			Port: ctx.ws.Config().Server.Port,
		})
	})
}
