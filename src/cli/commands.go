// Package cli implements the sorbet-lsp command tree.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	lspuri "go.lsp.dev/uri"

	"sorbet-lsp/src/config"
	"sorbet-lsp/src/internal/common"
	"sorbet-lsp/src/internal/version"
	"sorbet-lsp/src/server/session"
	"sorbet-lsp/src/server/uritranslate"
)

// CLI flags
var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "sorbet-lsp",
	Short: "URI translation and capability negotiation tooling for the Sorbet language server",
	Long: `sorbet-lsp maps between editor-visible document URIs and the language
server's canonical workspace paths, and normalizes client capabilities into
a per-session configuration.

COMMANDS:
  sorbet-lsp check <directory> [files...]   # Validate workspace options and preview URI mapping
  sorbet-lsp version                        # Show version information`,
	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check <directory> [files...]",
	Short: "Validate workspace options and preview per-file visibility and URI mapping",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sorbet-lsp %s\n", version.Version)
	},
}

func init() {
	checkCmd.Flags().StringVarP(&configPath, "config", "c", "", "workspace config file (YAML)")
	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := common.CLILogger
	if verbose {
		logger.SetLevel(common.LogDebug)
	}

	workspaceCfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		workspaceCfg = loaded
	}

	rootDir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	sess, err := session.New(session.Options{
		RootDirs:               []string{rootDir},
		AbsoluteIgnorePatterns: workspaceCfg.Ignore.Absolute,
		RelativeIgnorePatterns: workspaceCfg.Ignore.Relative,
		DirsMissingFromClient:  workspaceCfg.MissingFromClient,
	}, logger)
	if err != nil {
		return err
	}

	// Preview with a plain file:// client rooted at the workspace.
	sess.SetClientConfig(session.ClientConfig{RootURI: string(lspuri.File(rootDir))})
	sess.MarkInitialized()
	translator := uritranslate.New(sess, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "workspace root: %s\n", sess.RootPath())

	for _, arg := range args[1:] {
		path, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", arg, err)
		}
		switch {
		case !strings.HasPrefix(path, rootDir):
			fmt.Fprintf(out, "%s: outside workspace\n", path)
		case sess.IsFileIgnored(path):
			fmt.Fprintf(out, "%s: ignored\n", path)
		default:
			fmt.Fprintf(out, "%s: %s\n", path, translator.LocalToRemote(path))
		}
	}
	return nil
}

// Execute runs the CLI and returns any command error
func Execute() error {
	return rootCmd.Execute()
}
