package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"coworkers/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

The API token is never stored in the config file; set COWORKERS_TOKEN
in the environment or a .env file.

Example:
  coworkers config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Server.BaseURL = promptValue(reader, "Backend base URL", cfg.Server.BaseURL)
	cfg.Server.TimeoutSeconds = promptInt(reader, "Request timeout (seconds)", cfg.Server.TimeoutSeconds)
	cfg.Group.GroupID = promptInt64(reader, "Group ID", cfg.Group.GroupID)
	cfg.Group.TaskListID = promptInt64(reader, "Task list ID", cfg.Group.TaskListID)
	cfg.Cache.DBPath = promptValue(reader, "Cache database path", cfg.Cache.DBPath)
	cfg.UI.NoColor = promptYesNo("Disable color output?")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[server]")
	fmt.Printf("  base_url        = %s\n", cfg.Server.BaseURL)
	fmt.Printf("  timeout_seconds = %d\n", cfg.Server.TimeoutSeconds)
	fmt.Println("\n[group]")
	fmt.Printf("  group_id        = %d\n", cfg.Group.GroupID)
	fmt.Printf("  task_list_id    = %d\n", cfg.Group.TaskListID)
	fmt.Println("\n[cache]")
	fmt.Printf("  db_path         = %s\n", cfg.Cache.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  no_color        = %t\n", cfg.UI.NoColor)
	if cfg.Token == "" {
		fmt.Println("\nAPI token: not set (COWORKERS_TOKEN)")
	} else {
		fmt.Println("\nAPI token: set")
	}
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	value := promptValue(reader, label, strconv.Itoa(current))
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Printf("  Not a number, keeping %d\n", current)
		return current
	}
	return n
}

func promptInt64(reader *bufio.Reader, label string, current int64) int64 {
	value := promptValue(reader, label, strconv.FormatInt(current, 10))
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		fmt.Printf("  Not a number, keeping %d\n", current)
		return current
	}
	return n
}
