package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/truestock/truestock/internal/adapters/outbound/config"
	"github.com/truestock/truestock/internal/adapters/outbound/logging"
	"github.com/truestock/truestock/internal/adapters/outbound/tui"
	"github.com/truestock/truestock/internal/application"
	"github.com/truestock/truestock/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// session holds what every command of one process shares. The catalog is
// opened on first use and reused afterwards, so a shell keeps its changes
// across lines.
type session struct {
	path    string
	verbose bool

	loader domain.ConfigLoader
	cfg    domain.Config
	log    *zap.Logger
	svc    *application.InventoryService
}

func newSession() *session {
	return &session{loader: config.New()}
}

// service loads config, builds the logger and seeds the catalog once.
func (s *session) service(cmd *cobra.Command) (*application.InventoryService, error) {
	if s.svc != nil {
		return s.svc, nil
	}

	path := s.path
	if path == "" {
		path = "."
	}
	cfg, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr(), s.verbose)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	svc, err := application.NewInventoryFromConfig(cfg, log)
	if err != nil {
		return nil, err
	}

	s.cfg, s.log, s.svc = cfg, log, svc
	return svc, nil
}

func (s *session) close() {
	if s.log != nil {
		_ = s.log.Sync()
	}
}

func newRootCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "truestock",
		Short:         "In-memory product inventory",
		Long:          "TrueStock keeps a product catalog in memory and lets you add, remove, restock, reserve and search products from the command line, an interactive shell, an HTTP API or an MCP server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&s.path, "path", "", "Directory holding .truestock.yaml (defaults to current working directory)")
	cmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSearchCmd(s))
	cmd.AddCommand(newAddCmd(s))
	cmd.AddCommand(newRemoveCmd(s))
	cmd.AddCommand(newRestockCmd(s))
	cmd.AddCommand(newReserveCmd(s))
	cmd.AddCommand(newShellCmd(s))
	cmd.AddCommand(newServeCmd(s))
	cmd.AddCommand(newMCPCmd(s))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd(newSession())
}

func Execute() error {
	s := newSession()
	defer s.close()

	cmd := newRootCmd(s)
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), tui.RenderError(err))
		return err
	}
	return nil
}
