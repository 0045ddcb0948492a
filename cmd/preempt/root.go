package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "preempt",
	Short: "Exact and greedy solvers for preemptive single-machine scheduling",
	Long: `preempt solves single-machine preemptive scheduling instances with
tardiness and drop penalties: to proven optimality by branch-and-bound
with LP-relaxation pruning, by exhaustive search, or greedily in the
online setting. Instances are JSON documents; solutions are plain-text
slot listings with a trailing objective line.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(genCmd)
}
