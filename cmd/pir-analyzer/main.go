package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/peopleops-labs/pir-analyzer/internal/adapters/driving/cli"
)

func main() {
	// A missing .env is fine; configuration may come from the config file
	// or the process environment.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
