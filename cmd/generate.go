package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sched-sim/sim"
	"github.com/inference-sim/sched-sim/sim/workload"
)

var generatePolicy string // Draw the set a comparison would give this policy

// generateCmd writes a generated process set as CSV for later replay with --processes
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random process set as CSV",
	Long:  "Generate a random process set from the workload configuration and write it to stdout as pid,arrival,burst,priority CSV. The output can be replayed with --processes.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)
		if generatePolicy != "" && !sim.IsValidPolicy(generatePolicy) {
			logrus.Fatalf("Unknown policy %q; valid: %v", generatePolicy, sim.DefaultComparison)
		}
		shared := generatePolicy == "" || cfg.SameWorkload

		procs, err := workload.NewSource(&cfg.Workload, shared)(generatePolicy)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		if err := workload.WriteProcessesCSV(os.Stdout, procs); err != nil {
			logrus.Fatalf("Writing CSV failed: %v", err)
		}
	},
}

func init() {
	generateCmd.Flags().StringVar(&generatePolicy, "policy", "", "Generate the set a comparison would hand this policy (default: the shared set)")
	rootCmd.AddCommand(generateCmd)
}
