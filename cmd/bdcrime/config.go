package main

import (
	"fmt"
)

type ConfigSetCmd struct {
	Config string `arg:"" help:"Configuration name to change, like dataset.default."`
	Value  string `arg:"" help:"Configuration value to set."`
}

func (c *ConfigSetCmd) Run(ctx *context) error {
	changed, err := ctx.ws.SetGlobalConfig(c.Config, c.Value)
	if err != nil {
		return err
	}

	if changed {
		fmt.Printf("Set '%v' = '%v'\n", c.Config, c.Value)
	} else {
		fmt.Printf("'%v' already is '%v'\n", c.Config, c.Value)
	}

	return nil
}
