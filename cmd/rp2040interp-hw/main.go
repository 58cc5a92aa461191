// This file is part of rp2040-interpolator.
//
// rp2040-interpolator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rp2040-interpolator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rp2040-interpolator.  If not, see <https://www.gnu.org/licenses/>.

// Command rp2040interp-hw drives the hardware-proxy collaborator of
// spec.md section 4.3 against a real device, and offers an offline
// debugging aid that renders an interpolator engine's state graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ferdi265/rp2040-interpolator/interp"
	"github.com/Ferdi265/rp2040-interpolator/logger"
)

func main() {
	// logger discards by default so library consumers and tests stay quiet;
	// the CLI is the one place that wants Log() calls visible as they happen.
	logger.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rp2040interp-hw",
		Short: "cross-check a software interpolator emulation against real hardware",
	}

	root.AddCommand(newConnectCmd())
	root.AddCommand(newDotCmd())

	return root
}

func newConnectCmd() *cobra.Command {
	var (
		port          string
		generationStr string
		lane          int
		debug         bool
	)

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "open a serial connection to a device and report its generation and initial diff",
		RunE: func(cmd *cobra.Command, args []string) error {
			generation, err := interp.ParseGeneration(generationStr)
			if err != nil {
				return err
			}

			logger.Log("cli", "connecting to %s", port)

			proxy, err := dialProxy(port, lane, generation, debug)
			if err != nil {
				return err
			}

			dev, err := proxy.QueryGeneration()
			if err != nil {
				return fmt.Errorf("querying device generation: %w", err)
			}
			fmt.Printf("device reports generation %s\n", dev)

			diff := proxy.Diff()
			if diff.IsZero() {
				fmt.Println("simulation and device agree")
			} else {
				fmt.Printf("simulation and device disagree: %s\n", diff)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "/dev/ttyACM0", "serial device path")
	cmd.Flags().StringVar(&generationStr, "generation", "RP2040", "expected interpolator generation (RP2040 or RP2350)")
	cmd.Flags().IntVar(&lane, "lane", 0, "interpolator index (0 or 1)")
	cmd.Flags().BoolVar(&debug, "debug", false, "echo each wire exchange to stderr")

	return cmd
}

func newDotCmd() *cobra.Command {
	var (
		generationStr string
		lane          int
		accum0        uint32
		accum1        uint32
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "render an interpolator engine's state graph as Graphviz dot, for offline debugging",
		RunE: func(cmd *cobra.Command, args []string) error {
			generation, err := interp.ParseGeneration(generationStr)
			if err != nil {
				return err
			}

			e, err := interp.NewEngine(lane, generation)
			if err != nil {
				return err
			}
			if err := e.SetAccum(0, accum0); err != nil {
				return err
			}
			if err := e.SetAccum(1, accum1); err != nil {
				return err
			}

			return dumpDot(os.Stdout, e)
		},
	}

	cmd.Flags().StringVar(&generationStr, "generation", "RP2040", "interpolator generation (RP2040 or RP2350)")
	cmd.Flags().IntVar(&lane, "lane", 0, "interpolator index (0 or 1)")
	cmd.Flags().Uint32Var(&accum0, "accum0", 0, "initial accum[0]")
	cmd.Flags().Uint32Var(&accum1, "accum1", 0, "initial accum[1]")

	return cmd
}
