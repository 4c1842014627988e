// Command fastcrc lists, verifies and computes CRC checksums on the software
// engine or a CRC peripheral.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	cliName        = "fastcrc"
	cliDescription = "Compute and verify CRC-7/8/16/32 checksums."
)

func newRootCommand() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.backend, "backend", "software", "engine backend (software, sim, hardware)")
	pf.StringVar(&g.devicePath, "device", "/dev/mem", "memory device for the hardware backend")
	pf.Uint64Var(&g.base, "base", 0, "physical base address of the CRC block (default Kinetis K20)")
	pf.BoolVar(&g.noAccel, "no-accel", false, "disable CPU-accelerated CRC-32 kernels")
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.RegisterFlagCompletionFunc("backend", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"software", "sim", "hardware"}, cobra.ShellCompDirectiveDefault
	})

	rootCmd.AddCommand(
		newListCommand(),
		newCheckCommand(g),
		newSumCommand(g),
	)

	// Make help just show the usage
	rootCmd.SetHelpTemplate(`{{.UsageString}}`)
	return rootCmd
}

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
