package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanjaplatform/hanja-api/pkg/annotation"
	"github.com/hanjaplatform/hanja-api/pkg/config"
)

// Build variables - these will be set during build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	OS        = runtime.GOOS
	Arch      = runtime.GOARCH
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display detailed version information about the Hanja Platform API.

This includes the version number, git commit hash, build time and
runtime information, followed by the model backends the current
configuration points at and the entity labels the annotator knows.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
}

func runVersion(cmd *cobra.Command, args []string) {
	short, _ := cmd.Flags().GetBool("short")

	if short {
		fmt.Fprintf(cmd.OutOrStdout(), "v%s\n", Version)
		return
	}

	// Print detailed version information
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Hanja Platform API")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Version:      v%s\n", Version)
	fmt.Fprintf(out, "Git Commit:   %s\n", GitCommit)
	fmt.Fprintf(out, "Build Time:   %s\n", BuildTime)
	fmt.Fprintf(out, "Go Version:   %s\n", GoVersion)
	fmt.Fprintf(out, "OS/Arch:      %s/%s\n", OS, Arch)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	printBackends(cmd)
	fmt.Fprintln(out, strings.Repeat("-", 40))
}

// printBackends reports the configured model backends. A configuration that
// fails to load is reported, not fatal.
func printBackends(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	if err := config.Init(); err != nil {
		fmt.Fprintf(out, "Backends:     unavailable (%v)\n", err)
	} else {
		fmt.Fprintf(out, "Inference:    %s\n", config.GetString("inference.url"))
		fmt.Fprintf(out, "Translation:  %s\n", config.GetString("translation.url"))
		fmt.Fprintf(out, "Model:        %s\n", config.GetString("translation.model"))
		fmt.Fprintf(out, "Max Tokens:   %d\n", config.GetInt("workspace.max_tokens"))
	}

	labels := make([]string, len(annotation.Labels))
	for i, l := range annotation.Labels {
		labels[i] = string(l)
	}
	fmt.Fprintf(out, "Entities:     %s\n", strings.Join(labels, ", "))
}
