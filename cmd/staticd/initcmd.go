package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively generate a config file",
	Long:  `Init prompts for the common settings and writes a config.yaml.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("output", "config.yaml", "config file to write")
	rootCmd.AddCommand(initCmd)
}

// configFile mirrors the config package's structure with yaml tags so
// the generated file round-trips through viper.
type configFile struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Locations []struct {
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	} `yaml:"locations"`
	Cache struct {
		Seconds int `yaml:"seconds"`
	} `yaml:"cache"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func runInit(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(output); err == nil {
		overwrite := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite it", output),
			IsConfirm: true,
		}
		if _, promptErr := overwrite.Run(); promptErr != nil {
			cmd.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: "8080",
		Validate: func(input string) error {
			port, err := strconv.Atoi(input)
			if err != nil || port < 1 || port > 65535 {
				return errors.New("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	port, _ := strconv.Atoi(portStr)

	rootPrompt := promptui.Prompt{
		Label:   "Directory to serve",
		Default: "./public",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("a directory is required")
			}
			info, statErr := os.Stat(input)
			if statErr != nil {
				return fmt.Errorf("cannot stat %s: %w", input, statErr)
			}
			if !info.IsDir() {
				return errors.New("not a directory")
			}
			return nil
		},
	}
	root, err := rootPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	cachePrompt := promptui.Prompt{
		Label:   "Cache max-age seconds (0 prevents caching)",
		Default: "3600",
		Validate: func(input string) error {
			if _, convErr := strconv.Atoi(input); convErr != nil {
				return errors.New("must be a number")
			}
			return nil
		},
	}
	cacheStr, err := cachePrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	cacheSeconds, _ := strconv.Atoi(cacheStr)

	levelPrompt := promptui.Select{
		Label: "Log level",
		Items: []string{"debug", "info", "warn", "error"},
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	var cf configFile
	cf.Server.Port = port
	cf.Locations = append(cf.Locations, struct {
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	}{Type: "dir", Path: root})
	cf.Cache.Seconds = cacheSeconds
	cf.Log.Level = level

	data, err := yaml.Marshal(&cf)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	cmd.Printf("Wrote %s\n", output)
	return nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
