package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/preempt/instance"
)

func init() {
	genCmd.Flags().Int("jobs", 5, "number of jobs")
	genCmd.Flags().Int("slots", 10, "horizon length in slots")
	genCmd.Flags().Int64("seed", 0, "random seed (equal seeds → identical instances)")
	genCmd.Flags().Float64("step-share", 0, "fraction of jobs with step penalties [0,1]")
	genCmd.Flags().StringP("out", "o", "", "write the instance to a file instead of stdout")
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random scheduling instance",
	RunE:  runGen,
}

func runGen(cmd *cobra.Command, _ []string) error {
	cfg := instance.DefaultGenConfig()
	cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
	cfg.Slots, _ = cmd.Flags().GetInt("slots")
	cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	cfg.StepShare, _ = cmd.Flags().GetFloat64("step-share")

	s, err := instance.Generate(cfg)
	if err != nil {
		return err
	}
	data, err := instance.Marshal(s)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		return os.WriteFile(outPath, data, 0o644)
	}
	_, err = cmd.OutOrStdout().Write(data)

	return err
}
