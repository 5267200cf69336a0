package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	gameSport    string
	gameDate     string
	gameOpponent string
	gameRoster   string
	importFile   string
)

func init() {
	startCmd.Flags().StringVar(&gameSport, "sport", "Football", "Sport for the new game")
	startCmd.Flags().StringVar(&gameDate, "date", "", "Game date (YYYY-MM-DD)")
	startCmd.Flags().StringVar(&gameOpponent, "opponent", "", "Opponent name")
	startCmd.Flags().StringVar(&gameRoster, "roster", "default", "Roster source identifier")
	importCmd.Flags().StringVar(&importFile, "file", "", "Path to the roster CSV file")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(sportsCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "List the registered sports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/sports")
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new game",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]string{
			"sport":         gameSport,
			"date":          gameDate,
			"opponent":      gameOpponent,
			"roster_source": gameRoster,
		}
		return performPostRequest("/game", "application/json", payload)
	},
}

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Show the active game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/game")
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the active game's roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/roster")
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a roster CSV for the active game",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importFile == "" {
			return fmt.Errorf("--file is required")
		}
		data, err := os.ReadFile(importFile)
		if err != nil {
			return fmt.Errorf("failed to read roster file: %w", err)
		}
		return performPostRaw("/roster/import", "text/csv", data)
	},
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List the committed events of the active game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/log")
	},
}

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show the per-player totals of the active game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/totals")
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the active game's totals and event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/save", "application/json", nil)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active game's totals in MaxPreps format",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/export/maxpreps")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, contentType string, payload any) error {
	body := []byte("{}")
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
	}
	return performPostRaw(endpoint, contentType, body)
}

func performPostRaw(endpoint, contentType string, body []byte) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, contentType, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
