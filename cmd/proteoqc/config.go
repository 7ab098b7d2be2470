package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configOption is one key of the tool's configuration surface. set and
// get reject keys that are not listed here.
type configOption struct {
	key      string
	usage    string
	validate func(string) error
}

var configOptions = []configOption{
	{
		key:   "export.confidence",
		usage: "confidence tiers included by export (comma-separated: high,medium,low)",
		validate: func(v string) error {
			_, err := confidenceSet(v)
			return err
		},
	},
	{
		key:   "input.sheet",
		usage: "worksheet name read by clean (default: auto-detect)",
	},
}

func findOption(key string) (configOption, error) {
	keys := make([]string, len(configOptions))
	for i, opt := range configOptions {
		if opt.key == key {
			return opt, nil
		}
		keys[i] = opt.key
	}
	return configOption{}, fmt.Errorf("unknown config key %q (known keys: %s)",
		key, strings.Join(keys, ", "))
}

// runConfig executes the cobra-based config command tree.
func runConfig(args []string) int {
	cmd := newConfigCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage proteoqc configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.proteoqc.yaml.",
		Example: `  proteoqc config                              # show all config
  proteoqc config set export.confidence high   # restrict exports to High
  proteoqc config get export.confidence        # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(args[0])
		},
	}
}

func runConfigShow() error {
	settings := make(map[string]interface{})
	for _, opt := range configOptions {
		if v := viper.Get(opt.key); v != nil {
			settings[opt.key] = v
		}
	}

	if len(settings) == 0 {
		fmt.Println("# No configuration set. Config file: ~/.proteoqc.yaml")
		for _, opt := range configOptions {
			fmt.Printf("# %s: %s\n", opt.key, opt.usage)
		}
		return nil
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func runConfigSet(key, value string) error {
	opt, err := findOption(key)
	if err != nil {
		return err
	}
	if opt.validate != nil {
		if err := opt.validate(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}
	viper.Set(key, value)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".proteoqc.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func runConfigGet(key string) error {
	if _, err := findOption(key); err != nil {
		return err
	}
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Println(val)
	return nil
}
