// Package main provides the entry point for the Skill Gap Analyzer HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgap_server",
	Short: "Skill Gap Analyzer HTTP API Server",
	Long:  "Skill Gap Analyzer compares student resumes against job descriptions with AI, records every analysis, and serves placement-cell analytics via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
