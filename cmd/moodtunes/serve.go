package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ewilliams-labs/moodtunes/internal/adapters/rest"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the web application",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides HTTP_ADDR",
			},
		},
		Action: func(c *cli.Context) error {
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.close()

			addr := a.cfg.HTTPAddr
			if c.String("addr") != "" {
				addr = c.String("addr")
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           rest.NewHandler(a.recommender, a.log.Named("http")),
				ReadHeaderTimeout: 15 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				a.log.Info("🎶 MoodTunes is running", zap.String("address", addr))
				err := srv.ListenAndServe()
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
					return
				}
				serverErr <- nil
			}()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serverErr:
				return err
			case <-ctx.Done():
				a.log.Info("shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.log.Error("shutdown error", zap.Error(err))
				}
				return nil
			}
		},
	}
}
