package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/f3rmion/kanaspell/internal/chardesc"
	"github.com/spf13/cobra"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage character description dictionaries",
	Long: `Commands for building SQLite description dictionaries from JSONL files
and querying the active dictionary chain.

JSONL entries look like:
  {"locale":"ja","character":"っ","short":"チイサイ ツ"}
  {"locale":"ja","character":"漢","long":["カンジノ カン"]}
  {"locale":"ja","character":"a","reading":"エー"}`,
}

var dictImportCmd = &cobra.Command{
	Use:   "import <file.jsonl>...",
	Short: "Import JSONL dictionaries into a SQLite database",
	Long: `Import one or more JSONL dictionaries into a SQLite database. Existing
entries are updated field by field; empty fields keep their stored value.

Add the database to 'dictionaries' in config.yaml to use it.

Example:
  kanaspell dict import my-kanji.jsonl
  kanaspell dict import --builtin --db all.db`,
	RunE: runDictImport,
}

var dictLookupCmd = &cobra.Command{
	Use:   "lookup <character>...",
	Short: "Show what the dictionaries know about characters",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDictLookup,
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictImportCmd)
	dictCmd.AddCommand(dictLookupCmd)

	dictImportCmd.Flags().String("db", "", "database path (default <config dir>/descriptions.db)")
	dictImportCmd.Flags().Bool("builtin", false, "also import the built-in dictionary")
}

func runDictImport(cmd *cobra.Command, args []string) error {
	builtin, _ := cmd.Flags().GetBool("builtin")
	if len(args) == 0 && !builtin {
		return fmt.Errorf("nothing to import: pass JSONL files or --builtin")
	}

	d := chardesc.NewDictionary()
	if builtin {
		b, err := chardesc.Builtin()
		if err != nil {
			return err
		}
		for _, e := range b.Entries() {
			d.Add(e)
		}
	}
	for _, path := range args {
		if err := d.LoadFromFile(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = filepath.Join(getConfigDir(), "descriptions.db")
	}
	store, err := chardesc.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Import(d)
	if err != nil {
		return err
	}
	total, err := store.Count()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries into %s (%d total)\n", n, store.Path(), total)
	return nil
}

func runDictLookup(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	lookup := s.lookup
	loc := s.locale()
	out := cmd.OutOrStdout()

	for _, arg := range args {
		for _, r := range arg {
			c := string(r)
			fmt.Fprintf(out, "%s (%s)\n", c, loc)
			if short, err := lookup.ShortDescription(loc, c); err == nil {
				fmt.Fprintf(out, "  short:   %s\n", short)
			}
			if long, err := lookup.LongDescription(loc, c); err == nil {
				fmt.Fprintf(out, "  long:    %s\n", strings.Join(long, " / "))
			}
			if rd, err := lookup.CharacterReading(loc, c); err == nil {
				fmt.Fprintf(out, "  reading: %s\n", rd)
			}
		}
	}
	return nil
}
