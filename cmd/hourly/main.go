// Command hourly prints the launch recommendations for one day.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/spencer-p/kayakdash/pkg/forecast"
	"github.com/spencer-p/kayakdash/pkg/meta"
	"github.com/spencer-p/kayakdash/pkg/profile"
	"github.com/spencer-p/kayakdash/pkg/sunset"
	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

func main() {
	dateFlag := flag.String("date", "", "day to rate as YYYY-MM-DD, today if empty")
	profilePath := flag.String("profile", "", "YAML scoring profile")
	windows := flag.Bool("windows", false, "print launch windows instead of every hour")
	flag.Parse()

	var cfg forecast.Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err.Error())
	}

	place := sunset.PointWhite
	date := timetricks.TrimClock(time.Now().In(place.Location))
	if *dateFlag != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *dateFlag, place.Location)
		if err != nil {
			log.Fatalf("Bad date %q: %v", *dateFlag, err)
		}
		date = parsed
	}

	opts := meta.DefaultOptions()
	if *profilePath != "" {
		var err error
		if opts, err = profile.Load(*profilePath); err != nil {
			log.Fatal(err.Error())
		}
	}

	d := forecast.New(cfg, place).Analyze(context.Background(), date, opts)
	if len(d.Recommendations) == 0 {
		fmt.Printf("No recommendations for %s\n", date.Format("2006-01-02"))
		os.Exit(1)
	}

	if *windows {
		for i := range d.Windows {
			fmt.Println(d.Windows[i].String())
		}
		return
	}
	for _, rec := range d.Recommendations {
		fmt.Println(rec.String())
	}
	if best := d.Summary.Best; best != nil {
		fmt.Printf("Best hour: %s (%s)\n", best.StartTime, best.Rating.Title())
	}
}
