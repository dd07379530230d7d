/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumwatshade/cabinwatch/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cabinwatch",
	Short: "Watch cabin temperature and humidity and control the fan",
	Long: `Shows readings from the cabin sensor next to the local weather,
and lets you switch the cabin fan on and off.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logFile, err := openLogFile(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()

		a := newApp(cfg, logFile)
		a.logger.Info("dashboard starting", "device", cfg.DeviceURL, "location_enabled", cfg.LocationEnabled)

		p := tea.NewProgram(newModel(a), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cabinwatch.yaml)")
	rootCmd.PersistentFlags().String("device-url", "", "base URL of the cabin device")
	cobra.CheckErr(viper.BindPFlag("device.url", rootCmd.PersistentFlags().Lookup("device-url")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".cabinwatch" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cabinwatch")
	}

	viper.SetEnvPrefix("CABINWATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configPath is where configure writes: the --config flag or $HOME/.cabinwatch.yaml.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cabinwatch.yaml"), nil
}
