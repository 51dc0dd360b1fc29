package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(recalculateAllCmd)
	rootCmd.AddCommand(recalculateCmd)
	rootCmd.AddCommand(ratingCmd)
	rootCmd.AddCommand(matchResultCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health")
	},
}

var recalculateAllCmd = &cobra.Command{
	Use:   "recalculate-all",
	Short: "Recalculate the rating of every active player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/recalculate")
	},
}

var recalculateCmd = &cobra.Command{
	Use:   "recalculate <player-id>",
	Short: "Recalculate the rating of a single player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/players/"+url.PathEscape(args[0])+"/recalculate")
	},
}

var ratingCmd = &cobra.Command{
	Use:   "rating <player-id>",
	Short: "Show the stored rating of a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players/"+url.PathEscape(args[0])+"/rating")
	},
}

var matchResultCmd = &cobra.Command{
	Use:   "match <result-id>",
	Short: "Show a stored match result and its resolved outcome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/match-results/"+url.PathEscape(args[0]))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics")
	},
}

func requestURL(endpoint string) string {
	q := url.Values{}
	if dryRun {
		q.Set("dry_run", "true")
	}
	if verbose {
		q.Set("verbose", "true")
	}
	if len(q) == 0 {
		return host + endpoint
	}
	return host + endpoint + "?" + q.Encode()
}

func performRequest(method, endpoint string) error {
	target := requestURL(endpoint)
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
