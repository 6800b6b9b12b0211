package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sched-sim/sim"
	"github.com/inference-sim/sched-sim/sim/report"
	"github.com/inference-sim/sched-sim/sim/workload"
)

var (
	// CLI flags shared by every command
	logLevel      string // Log verbosity level
	configPath    string // Optional YAML config file
	policyPath    string // Optional YAML policy bundle replacing the config's policy section
	seed          int64  // Seed for random process generation
	numProcesses  int    // Number of generated processes
	processesPath string // CSV file with a fixed process set
	quantum       int64  // Round-robin time quantum
	sameWorkload  bool   // Give every policy the same generated set

	// CLI flags for output
	outputFormat string   // "table" or "json"
	showCharts   bool     // Render one bar chart per metric
	showDetails  bool     // Render each policy's schedule table
	policies     []string // Policies to compare
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Discrete-event simulator for CPU scheduling policies",
}

// runCmd schedules one process set under a single policy
var runCmd = &cobra.Command{
	Use:   "run <policy>",
	Short: "Run one scheduling policy and print its schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)
		name := args[0]
		if !sim.IsValidPolicy(name) {
			logrus.Fatalf("Unknown policy %q; valid: %v", name, sim.DefaultComparison)
		}

		procs, err := processSource(cfg)(name)
		if err != nil {
			logrus.Fatalf("Failed to build process set: %v", err)
		}
		run, err := sim.RunPolicy(name, cfg.Policy.PolicyConfig, procs)
		if err != nil {
			logrus.Fatalf("Scheduling failed: %v", err)
		}

		if outputFormat == "json" {
			if err := report.WriteJSON(os.Stdout, []*sim.Metrics{run.Metrics}); err != nil {
				logrus.Fatalf("%v", err)
			}
			return
		}
		report.WriteSchedule(os.Stdout, run)
	},
}

// compareCmd runs several policies and prints their metrics side by side
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run scheduling policies independently and compare their metrics",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveConfig(cmd)

		cmp, err := sim.Compare(cfg.Policy.Names(), cfg.Policy.PolicyConfig, processSource(cfg))
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}

		if outputFormat == "json" {
			if err := report.WriteJSON(os.Stdout, cmp.Metrics()); err != nil {
				logrus.Fatalf("%v", err)
			}
			return
		}
		if showDetails {
			for _, r := range cmp.Runs {
				report.WriteSchedule(os.Stdout, r)
			}
		}
		report.WriteComparison(os.Stdout, cmp.Metrics())
		if showCharts {
			report.WriteBarCharts(os.Stdout, cmp.Metrics())
		}
		logrus.Info("Comparison complete.")
	},
}

// resolveConfig sets up logging, then merges the config file and any flags
// the user explicitly changed. Exits on invalid configuration.
func resolveConfig(cmd *cobra.Command) Config {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	cfg := DefaultConfig()
	if configPath != "" {
		cfg, err = LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
	}
	if policyPath != "" {
		if err := applyPolicyFile(&cfg, policyPath); err != nil {
			logrus.Fatalf("%v", err)
		}
	}
	applyFlagOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	if outputFormat != "table" && outputFormat != "json" {
		logrus.Fatalf("Invalid output format %q; valid: table, json", outputFormat)
	}
	logrus.Infof("Workload: %d processes, seed=%d, same-workload=%v, quantum=%d",
		cfg.Workload.NumProcesses, cfg.Workload.Seed, cfg.SameWorkload, cfg.Policy.RoundRobin.Quantum)
	return cfg
}

// applyPolicyFile replaces cfg's policy section with the bundle at path.
func applyPolicyFile(cfg *Config, path string) error {
	bundle, err := sim.LoadPolicyBundle(path)
	if err != nil {
		return err
	}
	logrus.Infof("Loaded policy bundle from %s: %v", path, bundle.Names())
	cfg.Policy = *bundle
	return nil
}

// applyFlagOverrides copies flag values into cfg only when the flag was set,
// so defaults never overwrite values from the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Workload.Seed = seed
	}
	if flags.Changed("num-processes") {
		cfg.Workload.NumProcesses = numProcesses
	}
	if flags.Changed("quantum") {
		cfg.Policy.RoundRobin.Quantum = quantum
	}
	if flags.Changed("same-workload") {
		cfg.SameWorkload = sameWorkload
	}
	if flags.Changed("policies") {
		cfg.Policy.Policies = policies
	}
}

// processSource returns the fixed CSV set when --processes is given,
// otherwise the generator described by cfg.
func processSource(cfg Config) sim.ProcessSource {
	if processesPath == "" {
		return workload.NewSource(&cfg.Workload, cfg.SameWorkload)
	}
	procs, err := workload.LoadProcessesFile(processesPath)
	if err != nil {
		logrus.Fatalf("Failed to load processes: %v", err)
	}
	logrus.Infof("Loaded %d processes from %s", len(procs), processesPath)
	return sim.StaticSource(procs)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&policyPath, "policy-config", "", "Path to YAML policy bundle (policies, round_robin, multilevel_queue)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", defaults.Workload.Seed, "Seed for random process generation")
	rootCmd.PersistentFlags().IntVar(&numProcesses, "num-processes", defaults.Workload.NumProcesses, "Number of generated processes")
	rootCmd.PersistentFlags().StringVar(&processesPath, "processes", "", "CSV file of pid,arrival,burst[,priority] used instead of generation")
	rootCmd.PersistentFlags().Int64Var(&quantum, "quantum", defaults.Policy.RoundRobin.Quantum, "Round-robin time quantum in ticks")
	rootCmd.PersistentFlags().BoolVar(&sameWorkload, "same-workload", false, "Give every policy the same generated process set")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table, json)")

	compareCmd.Flags().StringSliceVar(&policies, "policies", nil, "Comma-separated policies to compare (default: all)")
	compareCmd.Flags().BoolVar(&showCharts, "charts", false, "Render a bar chart per metric")
	compareCmd.Flags().BoolVar(&showDetails, "details", false, "Render each policy's schedule")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
