// Package forecast fetches the OpenWeather 5-day/3-hour forecast for a city
// and renders it for the terminal.
//
// Every string taken from an API response is treated as untrusted and passed
// through [Sanitize] before it is rendered.
package forecast
