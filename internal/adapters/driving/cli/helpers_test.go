package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/regdoc/internal/adapters/driven/storage/csvfile"
	"github.com/custodia-labs/regdoc/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/services"
	"github.com/custodia-labs/regdoc/internal/documents"
)

func row(ref, heading, text string) domain.Row {
	return domain.Row{Section: ref, Heading: heading, Text: text, SectionReference: ref}
}

func decisionMakingTable() *domain.Table {
	return &domain.Table{
		Columns: domain.RequiredColumns,
		Rows: []domain.Row{
			row("I", "Introduction", "Profiling is increasingly used."),
			row("II", "Definitions", "The GDPR introduces provisions."),
			row("II.A", "Profiling", "Profiling is composed of three elements.[^4]\n[^4]: Article 4(4)."),
			row("II.A.1", "", "Automated processing."),
			row("Annex 1", "Good practice", "Recommendations."),
		},
	}
}

func covidLocationTable() *domain.Table {
	return &domain.Table{
		Columns: domain.RequiredColumns,
		Rows: []domain.Row{
			row("1", "Introduction", "The outbreak."),
			row("2", "Location data", "Sources of location data."),
			row("2.1", "", "Telecom operators."),
			row("2.2", "", "Information society services."),
			row("3", "Contact tracing", "Apps."),
		},
	}
}

// testEnv holds the stores behind the services installed by setupTestServices.
type testEnv struct {
	store  *memory.CorpusStore
	config *memory.ConfigStore
	dir    string
}

// setupTestServices installs real services over in-memory stores holding
// the decision_making and covid_location documents.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:  memory.NewCorpusStore(),
		config: memory.NewConfigStore(),
		dir:    t.TempDir(),
	}
	env.store.Put("decision_making", decisionMakingTable())
	env.store.Put("covid_location", covidLocationTable())

	entries, err := documents.Select([]string{"decision_making", "covid_location"})
	if err != nil {
		t.Fatal(err)
	}
	loader := services.NewLibraryLoader(env.store, entries)

	SetServices(&Services{
		Corpus:   services.NewCorpusService(loader),
		Toc:      services.NewTocService(loader),
		Import:   services.NewImportService(csvfile.NewTableSource(env.dir, nil), env.store),
		Settings: services.NewSettingsService(env.config),
	})
	t.Cleanup(clearServices)

	return env
}

func clearServices() {
	corpusService = nil
	tocService = nil
	importService = nil
	settingsService = nil
}

// execute runs the root command with args and returns everything it printed.
// Flags are reset afterwards so that tests do not leak into each other.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
