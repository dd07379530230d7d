package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sumwatshade/cabinwatch/cmd/device"
)

var (
	simAddr     string
	simTemp     float64
	simHumidity float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Serve a fake cabin device for development",
	Long: `Serves /sensor, /buzzer/on and /buzzer/off the way the cabin device does.
Point device.url at it, e.g. --device-url http://localhost:8081/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sim := device.NewSimulator(device.Reading{TemperatureC: simTemp, HumidityPct: simHumidity})
		app := sim.App(true)

		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Listen(simAddr)
		}()
		fmt.Fprintf(cmd.OutOrStdout(), "simulated device listening on %s\n", simAddr)

		// Wait for termination signal
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simAddr, "addr", ":8081", "listen address")
	simulateCmd.Flags().Float64Var(&simTemp, "temperature", 22, "base temperature in °C")
	simulateCmd.Flags().Float64Var(&simHumidity, "humidity", 45, "base relative humidity in %")
	rootCmd.AddCommand(simulateCmd)
}
