package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// failingWriter rejects every write, standing in for a closed stdout.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

// executeCommand runs root with args and stdin, returning stdout and stderr
// separately. Calls to exit with a non-zero code are reported as an error.
func executeCommand(root *cobra.Command, stdin string, args ...string) (stdout, stderr string, err error) {
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)

	code := runWithExit(func() {
		root.SetArgs(args)
		root.SetOut(outBuf)
		root.SetErr(errBuf)
		root.SetIn(bytes.NewBufferString(stdin))
		err = root.Execute()
	}, root)
	if code != 0 {
		err = fmt.Errorf("exit-%d", code)
	}
	return outBuf.String(), errBuf.String(), err
}

// executeMain runs Execute against rootCmd with stdout going to out and
// returns the exit code it requested.
func executeMain(out io.Writer, stdin string, args ...string) int {
	return runWithExit(func() {
		rootCmd.SetArgs(args)
		rootCmd.SetOut(out)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetIn(bytes.NewBufferString(stdin))
		Execute()
	}, rootCmd)
}

// runWithExit calls fn with exit replaced, returning the first exit code
// requested. Flags and viper are reset before and after so no run sees
// another run's configuration.
func runWithExit(fn func(), root *cobra.Command) (code int) {
	resetState(root)
	defer resetState(root)

	oldExit := exit
	exit = func(c int) {
		panic(fmt.Sprintf("exit-%d", c))
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				fmt.Sscanf(s, "exit-%d", &code)
				return
			}
			panic(r)
		}
	}()

	fn()
	return 0
}

func resetState(root *cobra.Command) {
	resetFlags(root)
	viper.Reset()
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
