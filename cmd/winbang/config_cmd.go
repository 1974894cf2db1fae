package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/winbang/winbang/cliout"
	"github.com/winbang/winbang/config"
)

func newConfigCmd(outputFormat *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after precedence rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded := config.Load()

			if *outputFormat == "json" {
				return cliout.PrintJSON(loaded.Config)
			}

			cliout.Header("Configuration")
			cliout.Label("Source", loaded.Source.String())
			if loaded.Path != "" {
				cliout.Label("Path", loaded.Path)
			}
			if loaded.Err != nil {
				cliout.Warning("file is invalid, showing fallback defaults: %v", loaded.Err)
			}
			fmt.Println()

			data, err := yaml.Marshal(loaded.Config)
			if err != nil {
				return fmt.Errorf("render configuration: %w", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the active configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, source := config.Locate()
			if p == "" {
				cliout.Info("(built-in defaults, no configuration file found)")
				cliout.Label("System candidate", config.SystemPath())
				cliout.Label("User candidate", config.UserPath())
				return nil
			}
			fmt.Println(p)
			cliout.Label("Source", source.String())
			return nil
		},
	}

	cmd.AddCommand(show, path)
	return cmd
}
