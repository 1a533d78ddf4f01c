package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

// Forecast returns the command that shows the weather forecast for a city.
//
// Required flags:
//
//	--city: City name
//
// Optional flags:
//
//	--country: ISO country code
//	--api-key: OpenWeather API key (default: config or $OPENWEATHER_API_KEY)
//	--units: standard, metric or imperial
//	--limit: Number of forecast cards
//	--city-time: Show times in the city's timezone
func Forecast(opts *handlers.Options) *cobra.Command {
	var fo handlers.ForecastOptions

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Show the 5-day weather forecast for a city",
		Long: `Fetch the OpenWeather 5-day/3-hour forecast and print the current
conditions followed by forecast cards.

Examples:
  nsjourney forecast --city halifax --country ca
  OPENWEATHER_API_KEY=... nsjourney forecast --city Truro --units imperial`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Forecast(cmd.Context(), *opts, fo)
		},
	}

	cmd.Flags().StringVar(&fo.City, "city", "", "City name (required)")
	cmd.Flags().StringVar(&fo.Country, "country", "", "ISO 3166 country code, e.g. CA")
	cmd.Flags().StringVar(&fo.APIKey, "api-key", "", "OpenWeather API key")
	cmd.Flags().StringVar(&fo.Units, "units", "", "Units: standard, metric or imperial")
	cmd.Flags().IntVar(&fo.Limit, "limit", 0, "Number of forecast cards (default from config)")
	cmd.Flags().BoolVar(&fo.CityTime, "city-time", false, "Show times in the city's timezone")

	_ = cmd.MarkFlagRequired("city")

	return cmd
}
