package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/dictionary"
)

var dictLang string

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the sqlite dictionary (DICTIONARY_DB)",
}

var dictImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a newline-delimited word file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictImport,
}

var dictCheckCmd = &cobra.Command{
	Use:   "check <word>...",
	Short: "Report whether words are in the dictionary",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDictCheck,
}

func init() {
	dictCmd.PersistentFlags().StringVar(&dictLang, "lang", "", "dictionary language (default from config)")
	dictCmd.AddCommand(dictImportCmd, dictCheckCmd)
	rootCmd.AddCommand(dictCmd)
}

func lang() string {
	if dictLang != "" {
		return dictLang
	}
	return cfg.Rules.Language
}

func openDictDB() (*dictionary.SQLiteOracle, error) {
	if cfg.DictionaryDB == "" {
		return nil, errors.New("DICTIONARY_DB is not set")
	}
	return dictionary.OpenSQLite(cfg.DictionaryDB)
}

func runDictImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	ws, err := assets.ReadLines(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	db, err := openDictDB()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.Import(cmd.Context(), lang(), ws)
	if err != nil {
		return err
	}
	log.Info().Int("read", len(ws)).Int("added", n).Str("lang", lang()).Msg("dictionary import")
	fmt.Fprintf(cmd.OutOrStdout(), "added %d of %d words\n", n, len(ws))
	return nil
}

func runDictCheck(cmd *cobra.Command, args []string) error {
	var oracle dictionary.Oracle
	if cfg.DictionaryDB == "" {
		o, err := dictionary.NewEmbeddedOracle()
		if err != nil {
			return err
		}
		oracle = o
	} else {
		db, err := openDictDB()
		if err != nil {
			return err
		}
		defer db.Close()
		oracle = db
	}

	for _, w := range args {
		r, err := oracle.CheckSpelling(cmd.Context(), w, lang())
		if err != nil {
			return err
		}
		verdict := "ok"
		if r != nil {
			verdict = "unknown"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", w, verdict)
	}
	return nil
}
