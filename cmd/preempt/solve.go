package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/preempt/instance"
	"github.com/katalvlaran/preempt/sched"
	"github.com/katalvlaran/preempt/solver"
)

func init() {
	solveCmd.Flags().String("name", nameOurs, "solver: ours (branch-and-bound) or bruteforce")
	solveCmd.Flags().String("setting", settingOffline, "information model: offline or online")
	solveCmd.Flags().String("solution", "", "score this solution file instead of solving")
	solveCmd.Flags().StringP("output", "o", "", "write the solution to a file instead of stdout")
	solveCmd.Flags().String("time-limit", "", "soft wall-clock budget, e.g. 30s (offline only)")
	solveCmd.Flags().String("config", "", "TOML config file supplying flag defaults")
}

var solveCmd = &cobra.Command{
	Use:   "solve INSTANCE",
	Short: "Solve a scheduling instance (or score a given solution)",
	Long: `Solve the JSON instance at the given path and print the solution:
one line per job with its 1-based slots (or null), then the objective.
With --solution the given schedule is scored instead of computing one.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags the user actually set override the config file.
	name := cfg.Solver.Name
	if cmd.Flags().Changed("name") {
		name, _ = cmd.Flags().GetString("name")
	}
	setting := cfg.Solver.Setting
	if cmd.Flags().Changed("setting") {
		setting, _ = cmd.Flags().GetString("setting")
	}
	timeLimit := cfg.Solver.TimeLimit
	if cmd.Flags().Changed("time-limit") {
		timeLimit, _ = cmd.Flags().GetString("time-limit")
	}

	s, err := instance.Load(args[0])
	if err != nil {
		return err
	}

	solutionPath, _ := cmd.Flags().GetString("solution")
	if solutionPath != "" {
		scored, serr := instance.LoadSolution(solutionPath, s)
		if serr != nil {
			return serr
		}

		return emit(cmd, scored)
	}

	opts, err := solverOptions(name, setting, timeLimit)
	if err != nil {
		return err
	}
	res, err := solver.Solve(s, opts)
	if err != nil {
		return err
	}
	if res.Schedule == nil {
		return fmt.Errorf("time limit expired before any candidate was evaluated")
	}
	if !res.Optimal && opts.Setting == solver.Offline {
		fmt.Fprintln(os.Stderr, "warning: time limit reached; result is the best known, not proven optimal")
	}

	return emit(cmd, res.Schedule)
}

// emit writes the solution to --output or stdout.
func emit(cmd *cobra.Command, s *sched.Schedule) error {
	outPath, _ := cmd.Flags().GetString("output")
	if outPath != "" {
		return instance.SaveSolution(outPath, s)
	}

	return instance.WriteSolution(cmd.OutOrStdout(), s)
}
