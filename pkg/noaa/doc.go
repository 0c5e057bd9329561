// Package noaa implements queries to NOAA CO-OPS to retrieve tide and tidal
// current predictions. Data is requested as a time series per station and
// calendar day (see PredictionQuery). Tides come back as water heights in feet
// above MLLW, either hourly or as high/low events; currents come back as speeds
// in miles per hour with an optional set direction. All times are local to
// the station.
package noaa
