package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/pescuma/bdcrime/lib/storages"
)

type DatasetsListCmd struct{}

func (c *DatasetsListCmd) Run(ctx *context) error {
	infos, err := ctx.ws.ListDatasets()
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Printf("No datasets imported. Use 'bdcrime import csv' to import one.\n")
		return nil
	}

	def, err := ctx.ws.GetGlobalConfig(storages.ConfigDefaultDataset)
	if err != nil {
		return err
	}

	for _, i := range infos {
		marker := " "
		if i.Name == def {
			marker = "*"
		}

		fmt.Printf("%v %v: %v records, %v years, %v areas (imported %v from %v)\n",
			marker, i.Name, humanize.Comma(int64(i.Records)), i.Years, i.Areas, humanize.Time(i.LoadedAt), i.Source)
	}

	return nil
}

type DatasetsDeleteCmd struct {
	Name string `arg:"" help:"Dataset to delete."`
}

func (c *DatasetsDeleteCmd) Run(ctx *context) error {
	err := ctx.ws.DeleteDataset(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %v\n", c.Name)

	return nil
}
