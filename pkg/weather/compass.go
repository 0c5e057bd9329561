package weather

import "math"

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Cardinal converts a bearing in degrees to a 16 point compass direction.
func Cardinal(degrees float64) string {
	n := len(compassPoints)
	i := int(math.RoundToEven(degrees/22.5)) % n
	if i < 0 {
		i += n
	}
	return compassPoints[i]
}
