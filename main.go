package main

import (
	"os"

	"neo-scout/internal/cli"
	"neo-scout/internal/logger"
)

var version = "dev"

func main() {
	logger.Banner(version)
	if err := cli.Execute(version); err != nil {
		logger.Error("CLI", err.Error())
		os.Exit(1)
	}
}
