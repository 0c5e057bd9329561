package noaa

import (
	"fmt"
	"testing"
	"time"
)

func TestQueryURL(t *testing.T) {
	table := []struct {
		name string
		in   PredictionQuery
		want string
	}{{
		name: "hourly tides",
		in: PredictionQuery{
			Start:   time.Date(2020, time.January, 5, 0, 0, 0, 0, time.Local),
			Station: Seattle,
		},
		want: fmt.Sprintf("https://api.tidesandcurrents.noaa.gov/api/prod/datagetter?application=kayakdash&begin_date=20200105&datum=MLLW&end_date=20200105&format=json&interval=h&product=predictions&station=%s&time_zone=lst_ldt&units=english", Seattle),
	}, {
		name: "padded hilo tides",
		in: PredictionQuery{
			Start:    time.Date(2020, time.January, 4, 0, 0, 0, 0, time.Local),
			Duration: 48 * time.Hour,
			Station:  Seattle,
			Interval: IntervalHiLo,
		},
		want: fmt.Sprintf("https://api.tidesandcurrents.noaa.gov/api/prod/datagetter?application=kayakdash&begin_date=20200104&datum=MLLW&end_date=20200106&format=json&interval=hilo&product=predictions&station=%s&time_zone=lst_ldt&units=english", Seattle),
	}, {
		name: "currents",
		in: PredictionQuery{
			Start:   time.Date(2020, time.January, 5, 0, 0, 0, 0, time.Local),
			Station: RichPassage,
			Product: ProductCurrents,
		},
		want: fmt.Sprintf("https://api.tidesandcurrents.noaa.gov/api/prod/datagetter?application=kayakdash&begin_date=20200105&end_date=20200105&format=json&interval=h&product=currents_predictions&station=%s&time_zone=lst_ldt&units=english", RichPassage),
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.url(NOAA_URL).String()
			if tc.want != got {
				t.Errorf("got  %q", got)
				t.Errorf("want %q", tc.want)
			}
		})
	}
}
