package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		baseURL string
		client  *TestClient
	)

	root := &cobra.Command{
		Use:           "smoke",
		Short:         "Smoke-test a running profile aggregator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewTestClient(baseURL)
			printHeader("Profile Aggregator - Smoke Tests")
			fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, baseURL, colorReset)
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the aggregator")

	root.AddCommand(
		&cobra.Command{
			Use:   "all",
			Short: "Run every check against sample inputs",
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.runAllTests()
			},
		},
		&cobra.Command{
			Use:   "health",
			Short: "Check the health endpoint",
			RunE: func(cmd *cobra.Command, args []string) error {
				return result(client.testHealthCheck())
			},
		},
		&cobra.Command{
			Use:   "user-data",
			Short: "Fetch the composite profile",
			RunE: func(cmd *cobra.Command, args []string) error {
				return result(client.testUserData())
			},
		},
		&cobra.Command{
			Use:   "country NAME",
			Short: "Look up country metadata",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return result(client.testCountry(args[0]))
			},
		},
		&cobra.Command{
			Use:   "rates CODE",
			Short: "Fetch exchange rates for a currency code",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return result(client.testExchangeRate(args[0]))
			},
		},
		&cobra.Command{
			Use:   "news COUNTRY",
			Short: "Fetch relevant headlines for a country",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return result(client.testNews(args[0]))
			},
		},
	)

	return root
}

func result(ok bool) error {
	if !ok {
		return fmt.Errorf("check failed")
	}
	return nil
}
