package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/agiangrant/stripes/cmd/stripes/commands"
)

const version = "0.1.0"

func main() {
	// A .env file is optional; STRIPES_* may come from the real environment
	_ = godotenv.Load()

	if err := commands.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
