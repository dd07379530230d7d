package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumwatshade/cabinwatch/internal/config"
)

// setupAnswers holds the form values; huh binds to them by pointer.
type setupAnswers struct {
	deviceURL       string
	weatherKey      string
	locationEnabled bool
	lat             string
	lon             string
	city            string
	country         string
	geocoderKey     string
}

func answersFromViper(v *viper.Viper) *setupAnswers {
	a := &setupAnswers{
		deviceURL:       v.GetString("device.url"),
		weatherKey:      v.GetString("weather.key"),
		locationEnabled: v.GetBool("location.enabled"),
		city:            v.GetString("location.city"),
		country:         v.GetString("location.country"),
		geocoderKey:     v.GetString("location.geocoder_key"),
	}
	if v.IsSet("location.lat") {
		a.lat = strconv.FormatFloat(v.GetFloat64("location.lat"), 'f', -1, 64)
	}
	if v.IsSet("location.lon") {
		a.lon = strconv.FormatFloat(v.GetFloat64("location.lon"), 'f', -1, 64)
	}
	return a
}

func (a *setupAnswers) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Device URL").Description("e.g. http://172.20.10.5/").Value(&a.deviceURL).Validate(validateURL),
			huh.NewInput().Title("weatherapi.com key").EchoMode(huh.EchoModePassword).Value(&a.weatherKey),
			huh.NewConfirm().Title("Use location for weather?").Value(&a.locationEnabled),
		),
		huh.NewGroup(
			huh.NewInput().Title("Latitude").Description("leave empty to geocode a city").Value(&a.lat).Validate(validateCoordinate(90)),
			huh.NewInput().Title("Longitude").Value(&a.lon).Validate(validateCoordinate(180)),
			huh.NewInput().Title("City").Value(&a.city),
			huh.NewInput().Title("Country").Value(&a.country),
			huh.NewInput().Title("Google geocoding key").EchoMode(huh.EchoModePassword).Value(&a.geocoderKey),
		).WithHideFunc(func() bool { return !a.locationEnabled }),
	)
}

// settings builds the config to write: every key of base except the
// coordinates, overlaid with the answers. Coordinates are written only as a
// pair, so clearing both drops any previous fix.
func (a *setupAnswers) settings(base *viper.Viper) (*viper.Viper, error) {
	out := viper.New()
	for _, k := range base.AllKeys() {
		if k == "location.lat" || k == "location.lon" {
			continue
		}
		out.Set(k, base.Get(k))
	}

	out.Set("device.url", strings.TrimSpace(a.deviceURL))
	out.Set("weather.key", strings.TrimSpace(a.weatherKey))
	out.Set("location.enabled", a.locationEnabled)
	out.Set("location.city", strings.TrimSpace(a.city))
	out.Set("location.country", strings.TrimSpace(a.country))
	out.Set("location.geocoder_key", strings.TrimSpace(a.geocoderKey))

	lat, lon := strings.TrimSpace(a.lat), strings.TrimSpace(a.lon)
	if lat == "" && lon == "" {
		return out, nil
	}
	if lat == "" || lon == "" {
		return nil, errors.New("latitude and longitude must be set together")
	}
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, fmt.Errorf("latitude: %w", err)
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, fmt.Errorf("longitude: %w", err)
	}
	out.Set("location.lat", latF)
	out.Set("location.lon", lonF)
	return out, nil
}

func validateURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("enter a full URL like http://172.20.10.5/")
	}
	return nil
}

func validateCoordinate(limit float64) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("not a number")
		}
		if f < -limit || f > limit {
			return fmt.Errorf("must be between -%g and %g", limit, limit)
		}
		return nil
	}
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactively write the cabinwatch config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		answers := answersFromViper(v)
		if err := answers.form().Run(); err != nil {
			return err
		}
		out, err := answers.settings(v)
		if err != nil {
			return err
		}
		if _, err := config.Load(out); err != nil {
			return err
		}

		path, err := configPath()
		if err != nil {
			return err
		}
		if err := out.WriteConfigAs(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}
