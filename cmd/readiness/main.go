package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/readiness"
)

var errNotReady = errors.New("deployment checks failed")

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		root    string
		env     []string
		scripts []string
		images  string
	)
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Check that this checkout is ready to deploy",
		Long: `Inspects .env.local, .env.example, package.json, vercel.json, .gitignore
and the project images directory. Missing required files, variables or
scripts are errors and make the command exit 1. Everything else is a warning.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := readiness.New(root)
			if cmd.Flags().Changed("require-env") {
				cl.RequiredEnv = env
			}
			if cmd.Flags().Changed("require-script") {
				cl.RequiredScripts = scripts
			}
			if images != "" {
				cl.ImagesDir = images
			}
			report := cl.Run()
			readiness.Print(out, report)
			if report.Failed() {
				return errNotReady
			}
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.Flags().StringVar(&root, "root", ".", "repository root to inspect")
	cmd.Flags().StringSliceVar(&env, "require-env", readiness.DefaultRequiredEnv, "variables that must be set in .env.local")
	cmd.Flags().StringSliceVar(&scripts, "require-script", readiness.DefaultRequiredScripts, "package.json scripts that must exist")
	cmd.Flags().StringVar(&images, "images", "", "project images directory, relative to --root")
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errNotReady) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
