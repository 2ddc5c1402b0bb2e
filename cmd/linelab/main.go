// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command linelab plots line lab datasets and animates the
// regression lines computed by a lab.
package main

import (
	"os"

	"cogentcore.org/linelab/base/logx"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	veryVerbose bool
	quiet       bool

	rootCmd = &cobra.Command{
		Use:           "linelab",
		Short:         "Plot line lab data and animate regression lines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
			logx.SetDefaultLogger()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each frame")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "log debugging details")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	rootCmd.AddCommand(plotCmd, animateCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("linelab:", err)
		os.Exit(1)
	}
}
