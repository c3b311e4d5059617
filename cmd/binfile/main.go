package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/binfile/internal/cli"
	"github.com/arthur-debert/binfile/pkg/errors"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A declined overwrite is an abort, not a failure worth a
		// stack of red text.
		if errors.IsCode(err, errors.ErrOverwriteDeclined) || errors.IsCode(err, errors.ErrUserAbort) {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		os.Exit(1)
	}
}
