package main

import (
	"retailops/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("retailops: %v", err)
	}
}
