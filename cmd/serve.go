package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cfbPickem/scheduler"
	"cfbPickem/web"

	"github.com/spf13/cobra"
)

func serveCommand(runtime func() *Runtime) *cobra.Command {
	var noCron bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and scheduled jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runtime()
			cfg := rt.Config

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if !noCron {
				c, err := scheduler.SetupCron(ctx, scheduler.Schedules{
					LineRefresh: cfg.LineRefreshCron,
					GameEnd:     cfg.GameEndCron,
				}, rt.JobDeps())
				if err != nil {
					return err
				}
				defer func() { <-c.Stop().Done() }()
			}

			server := web.NewServer(cfg.Port, rt.App(), web.RouterOptions{
				AdminUser:     cfg.AdminUser,
				AdminPassword: cfg.AdminPassword,
				CORSOrigins:   cfg.CORSOrigins,
				Development:   !cfg.IsProduction(),
			})

			shutdown := make(chan bool)
			wg := &sync.WaitGroup{}

			// Catch ctrl-c and SIGTERM and shut everything down.
			intChannel := make(chan os.Signal, 2)
			signal.Notify(intChannel, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-intChannel
				cancel()
				close(shutdown)

				if err := waitTimeout(wg, 10*time.Second); err != nil {
					log.Printf("timed out waiting for proper shutdown")
					os.Exit(255)
				}
			}()

			wg.Add(1)
			server.ListenAndServe(shutdown, wg)

			wg.Wait()
			log.Printf("server shutdown")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCron, "no-cron", false, "Do not start the scheduled jobs")
	return cmd
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
