package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cellbench/internal/analysis"
	"cellbench/internal/bench"
	"cellbench/internal/config"
)

var (
	cfgPath    string
	cells      int
	ticks      int
	seed       int64
	chemistry  string
	stateOut   string
	historyOut string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "cli",
	Short: "Battery cell bench simulator",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a deterministic bench session and report on the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)

		cfg := config.Default()
		if cfgPath != "" {
			if cfg, err = config.Load(cfgPath); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("cells") {
			cfg.Cells.Count = cells
		}
		if cmd.Flags().Changed("seed") {
			cfg.Cells.Seed = seed
		}

		reg, err := cfg.Registry()
		if err != nil {
			return err
		}

		src := bench.NewSource(cfg.Cells.Seed)
		engine := bench.NewEngine(bench.NewStore(reg), bench.NewLog(), src)

		assign, err := assignPolicy(engine, src)
		if err != nil {
			return err
		}
		if err := engine.Initialize(cfg.Cells.Count, assign); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"cells": cfg.Cells.Count,
			"seed":  cfg.Cells.Seed,
		}).Info("bank initialized")

		for i := 0; i < ticks; i++ {
			engine.Tick()
		}

		report(engine, cfg)

		if stateOut != "" {
			if err := writeCSV(stateOut, func(f *os.File) error {
				return bench.WriteStateCSV(f, engine.Store().Records())
			}); err != nil {
				return err
			}
			logrus.WithField("path", stateOut).Info("state table written")
		}
		if historyOut != "" {
			if err := writeCSV(historyOut, func(f *os.File) error {
				return bench.WriteHistoryCSV(f, engine.Log().Records())
			}); err != nil {
				return err
			}
			logrus.WithField("path", historyOut).Info("history table written")
		}
		return nil
	},
}

func assignPolicy(engine *bench.Engine, src bench.Source) (bench.AssignFunc, error) {
	reg := engine.Store().Registry()
	switch chemistry {
	case "random":
		return bench.RandomAssign(reg, src), nil
	case "round-robin":
		return bench.RoundRobinAssign(reg), nil
	default:
		if _, err := reg.Lookup(chemistry); err != nil {
			return nil, err
		}
		return bench.FixedAssign(chemistry), nil
	}
}

func report(engine *bench.Engine, cfg *config.Config) {
	records := engine.Store().Records()

	if cfg.Bench.Name != "" {
		fmt.Printf("bench %s (group %d)\n", cfg.Bench.Name, cfg.Bench.Group)
	}

	overview, err := analysis.Aggregate(records)
	if err != nil {
		logrus.WithError(err).Error("aggregate")
		return
	}
	fmt.Printf("cells=%d avg_voltage=%.2fV avg_temp=%.1f°C total_power=%.2fW avg_health=%.1f%%\n",
		overview.CellCount, overview.AvgVoltage, overview.AvgTemperature,
		overview.TotalPower, overview.AvgHealth)

	fmt.Println("\nranking:")
	for i, r := range analysis.Rank(records) {
		fmt.Printf("%2d. %-8s %-7s score=%.2f %.2fV %.2fA %.1f°C health=%.1f%%\n",
			i+1, r.CellID, r.Status, r.Score, r.Voltage, r.Current, r.Temperature, r.Health)
	}

	if alerts := analysis.Alerts(records); len(alerts) > 0 {
		fmt.Println("\nalerts:")
		for _, a := range alerts {
			fmt.Println("  " + a)
		}
	} else {
		fmt.Println("\nall cells operating normally")
	}

	if m, err := analysis.Correlation(engine.Log().Records()); err == nil {
		fmt.Println("\ncorrelation:")
		fmt.Printf("%-12s", "")
		for _, f := range m.Fields {
			fmt.Printf("%12s", f)
		}
		fmt.Println()
		for i, f := range m.Fields {
			fmt.Printf("%-12s", f)
			for j := range m.Fields {
				fmt.Printf("%12.3f", m.Values[i][j])
			}
			fmt.Println()
		}
	}
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func init() {
	simulateCmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML config")
	simulateCmd.Flags().IntVar(&cells, "cells", 8, "Number of cells in the bank")
	simulateCmd.Flags().IntVar(&ticks, "ticks", 10, "Number of simulation ticks")
	simulateCmd.Flags().Int64Var(&seed, "seed", 1, "Randomness seed")
	simulateCmd.Flags().StringVar(&chemistry, "chemistry", "random",
		"Chemistry assignment: random, round-robin, or a chemistry tag")
	simulateCmd.Flags().StringVar(&stateOut, "state-out", "", "Optional path for the state table CSV")
	simulateCmd.Flags().StringVar(&historyOut, "history-out", "", "Optional path for the history table CSV")
	simulateCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log verbosity level")
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
