package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/radix-engine/backend/internal/config"
	"github.com/radix-engine/backend/internal/corpus"
	"github.com/radix-engine/backend/internal/engine"
	"github.com/radix-engine/backend/internal/storage"
)

var (
	dataDir  string
	langFlag string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "radix",
	Short:        "radix: word roots from the command line",
	Long:         "Decompose words into prefixes, roots and suffixes, and look up morpheme meanings.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&dataDir, "data", "", "Corpus data directory (default $CORPUS_DATA_DIR or ./data)")
	f.StringVar(&langFlag, "lang", "", "Translation language, e.g. ko or vi")
	f.BoolVarP(&verbose, "verbose", "v", false, "Log corpus loading")

	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(fragmentCmd)
}

// newEngine loads config from the environment and applies flag overrides.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	cfg := config.Load()
	if dataDir != "" {
		cfg.Corpus.DataDir = dataDir
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.InfoLevel)
	}
	entry := logger.WithField("service", "radix-cli")

	fs, err := storage.NewFileStorage(cfg.Corpus.DataDir)
	if err != nil {
		return nil, err
	}
	store := corpus.NewStore(fs, cfg.Corpus, entry)
	return engine.NewEngine(cfg, entry, store), nil
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
