package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/eddy-geek/lsinput/internal/version"
	"github.com/eddy-geek/lsinput/pkg/config"
	"github.com/eddy-geek/lsinput/pkg/devices"
	"github.com/eddy-geek/lsinput/pkg/display"
	"github.com/eddy-geek/lsinput/pkg/logging"
	"github.com/eddy-geek/lsinput/pkg/symlinks"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		deviceDir  string
		prefix     string
		aliasDirs  []string
		showIDs    bool
	)

	rootCmd := &cobra.Command{
		Use:   "lsinput",
		Short: "List input devices and their alias links",
		Long: `lsinput lists input devices from /dev/input/event*, printing each
device's kernel-reported name and, per alias directory (by-path, by-id),
the symbolic links that resolve to that device node.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags override file values only when set.
			if cmd.Flags().Changed("device-dir") {
				cfg.DeviceDir = config.ExpandPath(deviceDir)
			}
			if cmd.Flags().Changed("prefix") {
				cfg.DevicePrefix = prefix
			}
			if cmd.Flags().Changed("alias-dir") {
				cfg.AliasDirs = aliasDirs
				for i, dir := range cfg.AliasDirs {
					cfg.AliasDirs[i] = config.ExpandPath(dir)
				}
			}
			if cmd.Flags().Changed("ids") {
				cfg.ShowIDs = showIDs
			}

			return runList(cfg, cmd.OutOrStdout())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/"+config.ConfigFileName+")")
	rootCmd.Flags().StringVar(&deviceDir, "device-dir", "", "Directory of input device nodes")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "Name prefix marking candidate device nodes")
	rootCmd.Flags().StringArrayVar(&aliasDirs, "alias-dir", nil, "Alias directory to search for links (repeatable)")
	rootCmd.Flags().BoolVar(&showIDs, "ids", false, "Also print bus/vendor/product identity per device")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// runList walks the candidate device nodes and prints one report block per
// openable device. Per-device and per-alias-directory failures degrade to
// inline diagnostics; only a failure to read the device directory itself is
// returned as an error.
func runList(cfg *config.Config, out io.Writer) error {
	logger := logging.GetLogger("cli")

	candidates, err := devices.Candidates(cfg.DeviceDir, cfg.DevicePrefix)
	if err != nil {
		return err
	}
	logger.Info().Int("candidates", len(candidates)).Str("deviceDir", cfg.DeviceDir).Msg("Enumerating devices")

	renderer := display.NewRenderer(out, cfg.ShowIDs)
	for _, path := range candidates {
		dev, ok := devices.Describe(path)
		if !ok {
			continue
		}
		renderer.Device(dev)

		for _, aliasDir := range cfg.AliasDirs {
			links, err := symlinks.FindLinksTo(path, aliasDir)
			if err != nil {
				logger.Debug().Err(err).Str("device", path).Str("aliasDir", aliasDir).Msg("Link resolution failed")
				renderer.LinksError(aliasDir, err)
				continue
			}
			renderer.Links(aliasDir, links)
		}
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lsinput version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}
