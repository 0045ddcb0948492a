// Command preempt is the command-line adapter over the preempt library:
// it loads JSON instances, runs the offline or online solvers, scores
// provided solution files, and generates random instances.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
