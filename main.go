package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"

	"github.com/spencer-p/kayakdash/pkg/forecast"
	"github.com/spencer-p/kayakdash/pkg/handlers"
	"github.com/spencer-p/kayakdash/pkg/meta"
	"github.com/spencer-p/kayakdash/pkg/metrics"
	"github.com/spencer-p/kayakdash/pkg/profile"
	"github.com/spencer-p/kayakdash/pkg/sunset"
)

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`

	Timezone    string        `default:"America/Los_Angeles"`
	ProfilePath string        `envconfig:"PROFILE_PATH"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"1h"`

	SessionKey    string `envconfig:"SESSION_KEY"`
	EncryptionKey string `envconfig:"ENCRYPTION_KEY"`
	SecureCookies bool   `envconfig:"SECURE_COOKIES" default:"true"`

	forecast.Config
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	loc, err := time.LoadLocation(env.Timezone)
	if err != nil {
		log.Fatalf("Bad timezone %q: %v", env.Timezone, err)
	}
	place := sunset.PointWhite
	place.Location = loc

	opts := meta.DefaultOptions()
	if env.ProfilePath != "" {
		if opts, err = profile.Load(env.ProfilePath); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Loaded profile %s", env.ProfilePath)
	}
	holder := profile.NewHolder(opts)

	fetcher := forecast.New(env.Config, place)
	if fetcher.Weather == nil {
		log.Println("No OpenWeatherMap API key, weather will be synthetic")
	}

	server := handlers.NewServer(fetcher, holder, handlers.Config{
		CacheTTL:      env.CacheTTL,
		Location:      loc,
		SessionKey:    env.SessionKey,
		EncryptionKey: env.EncryptionKey,
		SecureCookies: env.SecureCookies,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if env.ProfilePath != "" {
		go func() {
			err := profile.Watch(ctx, env.ProfilePath, func(o meta.Options) {
				holder.Set(o)
				server.Purge()
			})
			if err != nil {
				log.Printf("Not watching profile: %v", err)
			}
		}()
	}

	r := mux.NewRouter().StrictSlash(true)
	r.Use(metrics.LatencyHandler)
	r.Handle("/metrics", metrics.Handler())
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, server)

	srv := &http.Server{
		Handler:      ghandlers.RecoveryHandler()(ghandlers.LoggingHandler(os.Stdout, r)),
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Listening and serving on %s/%s", srv.Addr, env.Prefix[1:])
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
