package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/orderdesk/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage desk configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  orderdesk config init --output desk.yaml
  orderdesk config validate --config desk.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an existing configuration file",
	RunE:  runConfigValidate,
}

var configOutput string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configOutput, "output", "o", "desk.yaml", "output file path")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configOutput); err != nil {
		return err
	}
	fmt.Printf("wrote default config to %s\n", configOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return fmt.Errorf("pass the file to validate with --config")
	}
	if _, err := config.LoadFromFile(cfgFile); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", cfgFile)
	return nil
}
