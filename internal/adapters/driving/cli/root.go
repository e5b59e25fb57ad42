// Package cli provides the regdoc command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
	"github.com/custodia-labs/regdoc/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// annotationDatabase marks commands that need the local corpus database.
const annotationDatabase = "regdoc/database"

// Driving ports used by the commands. Set by the bootstrap or by SetServices.
var (
	corpusService   driving.CorpusService
	tocService      driving.TocService
	importService   driving.ImportService
	settingsService driving.SettingsService
)

var (
	options       Options
	bootstrap     Bootstrap
	closeServices func() error
)

// Options are the global flags, passed to the bootstrap.
type Options struct {
	// ConfigDir holds config.toml. Empty means ~/.regdoc.
	ConfigDir string

	// CorpusDir overrides corpus.dir.
	CorpusDir string

	// Backend overrides corpus.backend.
	Backend string

	// Verbose enables debug logging.
	Verbose bool

	// Database is set when the command needs the local corpus database
	// regardless of the configured backend.
	Database bool
}

// Services are the driving ports the commands run against.
type Services struct {
	Corpus   driving.CorpusService
	Toc      driving.TocService
	Import   driving.ImportService
	Settings driving.SettingsService
}

// Bootstrap wires the services for the parsed global flags. The returned
// close function releases what the services hold open.
type Bootstrap func(opts Options) (*Services, func() error, error)

var rootCmd = &cobra.Command{
	Use:   "regdoc",
	Short: "Read regulatory documents by reference",
	Long: `regdoc resolves references such as "5(1)(a)" or "II.A.3" against a corpus
of regulatory documents, prints their text and footnotes, and browses the
combined table of contents.

Corpora are read from CSV files in the corpus directory, or from the local
database after "regdoc corpus import".`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default ~/.regdoc)")
	flags.StringVar(&options.CorpusDir, "corpus-dir", "", "directory holding the corpus CSV files")
	flags.StringVar(&options.Backend, "backend", "", "corpus backend: csv or sqlite")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "enable debug logging")
}

// SetBootstrap registers the function that wires the services before a
// command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices sets the driving ports directly. Nil fields are left unset.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	if s.Corpus != nil {
		corpusService = s.Corpus
	}
	if s.Toc != nil {
		tocService = s.Toc
	}
	if s.Import != nil {
		importService = s.Import
	}
	if s.Settings != nil {
		settingsService = s.Settings
	}
}

// Execute runs the root command and releases the services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		err = errors.Join(err, closeServices())
		closeServices = nil
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(options.Verbose)

	if bootstrap == nil || corpusService != nil {
		return nil
	}

	opts := options
	opts.Database = needsDatabase(cmd)

	services, closer, err := bootstrap(opts)
	if err != nil {
		return err
	}
	SetServices(services)
	closeServices = closer
	return nil
}

func needsDatabase(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationDatabase] == "true" {
			return true
		}
	}
	return false
}
