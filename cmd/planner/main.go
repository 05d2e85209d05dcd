package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/pageza/nutriplan/backend/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
