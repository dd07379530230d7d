package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fanCmd = &cobra.Command{
	Use:       "fan on|off",
	Short:     "Switch the cabin fan (buzzer) on or off",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a := newApp(cfg, os.Stderr)

		if args[0] == "on" {
			err = a.device.TurnBuzzerOn(cmd.Context())
		} else {
			err = a.device.TurnBuzzerOff(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to toggle buzzer: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fan %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fanCmd)
}
