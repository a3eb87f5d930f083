package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/truestock/truestock/internal/adapters/inbound/httpapi"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(s *session) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over an HTTP JSON API",
		Long:  "Start the TrueStock HTTP API. The listen address comes from --addr, then http.addr in .truestock.yaml, then :8080.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.service(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = s.cfg.HTTP.Addr
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewAPI(svc, s.log).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				s.log.Info("http api listening", zap.String("addr", addr))
				fmt.Fprintf(cmd.OutOrStdout(), "TrueStock API listening on %s\n", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("http server: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			s.log.Info("http api shutting down")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down http server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides http.addr)")

	return cmd
}
