package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/veteran-resume-builder/internal/pipeline"
	"github.com/jonathan/veteran-resume-builder/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate <profile.json>",
	Short: "Validate a profile file without building anything",
	Long: `Checks a profile file against the profile schema and the semantic rules
(date ordering, contact requirements, branch names) and reports every
problem found. Use --schema to validate against a schema file of your own
instead of the built-in one.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateCmd,
}

var validateSchemaPath string

func init() {
	validateCommand.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to a JSON Schema file to validate against")
	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, args []string) error {
	profilePath := args[0]

	if validateSchemaPath != "" {
		if err := schemas.ValidateJSON(validateSchemaPath, profilePath); err != nil {
			return err
		}
		fmt.Printf("%s is valid against %s\n", profilePath, validateSchemaPath)
		return nil
	}

	profile, err := pipeline.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	fmt.Printf("%s is valid (target role: %s)\n", profilePath, profile.TargetRole)
	return nil
}
