// Package main is the entry point for decor.
package main

import (
	"github.com/decor-cli/decor/cmd"
	"github.com/decor-cli/decor/config"
	"github.com/decor-cli/decor/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
