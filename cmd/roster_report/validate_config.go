package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/roster-summary/internal/schemas"
	shipped "github.com/jonathan/roster-summary/schemas"
	"github.com/spf13/cobra"
)

var schemaPath string

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config FILE",
	Short: "Validate a config JSON file against the config schema",
	Long: `Validates a config JSON file against the built-in config schema, or against
the schema given with --schema. Exits with status 1 when validation fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateConfig,
}

func init() {
	validateConfigCmd.Flags().StringVar(&schemaPath, "schema", "", "Path to a JSON Schema file (default: built-in config schema)")
	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(cmd *cobra.Command, args []string) error {
	return validateConfigFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), schemaPath, args[0])
}

// validateConfigFile checks jsonPath against schemaFile, or against the
// embedded config schema when schemaFile is empty.
func validateConfigFile(out, errOut io.Writer, schemaFile, jsonPath string) error {
	var err error
	if schemaFile != "" {
		err = schemas.ValidateJSON(schemaFile, jsonPath)
	} else {
		var content []byte
		content, err = os.ReadFile(jsonPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		err = schemas.ValidateJSONString(shipped.Config, string(content))
	}

	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Validation failed: %s\n", jsonPath)
		return err
	}

	_, _ = fmt.Fprintf(out, "Validation passed: %s\n", jsonPath)
	return nil
}
