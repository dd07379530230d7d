package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/cabinwatch/cmd/sensor"
)

var sensorJSON bool

var sensorCmd = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current cabin temperature and humidity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a := newApp(cfg, os.Stderr)

		r, err := a.device.GetSensorData(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load sensor data: %w", err)
		}
		if sensorJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Temperature: %s\nHumidity:    %s\n", sensor.Celsius(r.TemperatureC), sensor.Percent(r.HumidityPct))
		return nil
	},
}

func init() {
	sensorCmd.Flags().BoolVar(&sensorJSON, "json", false, "print the raw reading as JSON")
	rootCmd.AddCommand(sensorCmd)
}
