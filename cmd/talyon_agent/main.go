// Package main provides the entry point for the talyon matching-engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talyon_agent",
	Short: "Candidate-job matching and recommendation engine",
	Long:  "Runs the two-stage recommendation flow: rule-based multi-dimension scoring over the job corpus, followed by a single batched language-model re-ranking of the shortlist.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
