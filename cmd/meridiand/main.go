package main

import (
	"os"

	"github.com/meridian-chain/meridian/cmd/meridiand/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
