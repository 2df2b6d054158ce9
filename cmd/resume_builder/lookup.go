package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/veteran-resume-builder/internal/mos"
	"github.com/jonathan/veteran-resume-builder/internal/observability"
)

var lookupCommand = &cobra.Command{
	Use:   "lookup <code>",
	Short: "Translate an occupational code into civilian terms",
	Long: `Looks up a military occupational code (MOS, AFSC, rating) in the reference
table and prints its civilian job titles and skills. Use --branch to
disambiguate codes shared across services.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookupCmd,
}

var searchCommand = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the occupational code table",
	Long: `Searches codes, titles, civilian equivalents, skills and keywords for the
query. Exact code matches rank first, then title prefixes, then everything
else in table order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCmd,
}

var (
	lookupBranch   string
	lookupMOSTable string
	searchMOSTable string
)

func init() {
	lookupCommand.Flags().StringVarP(&lookupBranch, "branch", "b", "", "Service branch to disambiguate shared codes (e.g. Navy)")
	lookupCommand.Flags().StringVar(&lookupMOSTable, "mos-table", "", "Path to a custom occupational code CSV")
	searchCommand.Flags().StringVar(&searchMOSTable, "mos-table", "", "Path to a custom occupational code CSV")

	rootCmd.AddCommand(lookupCommand)
	rootCmd.AddCommand(searchCommand)
}

func runLookupCmd(_ *cobra.Command, args []string) error {
	table, err := loadTable(lookupMOSTable)
	if err != nil {
		return err
	}

	record, err := table.Lookup(args[0], lookupBranch)
	if err != nil {
		return err
	}

	printRecord(os.Stdout, record)
	return nil
}

func runSearchCmd(_ *cobra.Command, args []string) error {
	table, err := loadTable(searchMOSTable)
	if err != nil {
		return err
	}

	records := table.Search(args[0])
	if len(records) == 0 {
		fmt.Printf("No matches for %q\n", args[0])
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintMOSMatches(records)
	return nil
}

// printRecord writes one record in full detail.
func printRecord(out io.Writer, record *mos.Record) {
	fmt.Fprintf(out, "%s (%s)\n", record.Code, record.Branch)
	fmt.Fprintf(out, "Title:             %s\n", record.Title)
	if len(record.CivilianTitles) > 0 {
		fmt.Fprintf(out, "Civilian titles:   %s\n", strings.Join(record.CivilianTitles, ", "))
	}
	if len(record.Skills) > 0 {
		fmt.Fprintf(out, "Civilian skills:   %s\n", strings.Join(record.Skills, ", "))
	}
	if len(record.Keywords) > 0 {
		fmt.Fprintf(out, "Keywords:          %s\n", strings.Join(record.Keywords, ", "))
	}
}
