package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/cabinwatch/cmd/weather"
)

var weatherJSON bool

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Print the current weather for this location",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a := newApp(cfg, os.Stderr)

		snap, err := a.weather.Load(cmd.Context())
		if err != nil {
			return errors.New(weather.ErrorMessage(err))
		}
		out := cmd.OutOrStdout()
		if weatherJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}
		fmt.Fprintf(out, "%s\n", snap.Place())
		fmt.Fprintf(out, "%s, %s (feels like %s)\n", snap.Temperature(), snap.ConditionText, snap.FeelsLike())
		fmt.Fprintf(out, "Humidity %s, wind %s\n", snap.Humidity(), snap.Wind())
		return nil
	},
}

func init() {
	weatherCmd.Flags().BoolVar(&weatherJSON, "json", false, "print the snapshot as JSON")
	rootCmd.AddCommand(weatherCmd)
}
