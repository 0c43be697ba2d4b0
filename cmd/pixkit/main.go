package main

import (
	"fmt"
	"os"

	"pixkit/pkg/cli"
	"pixkit/pkg/codec"
)

func main() {
	// PIXKIT_ROOT confines every path to one directory, used by sandboxed runs
	fs, err := codec.NewFs(os.Getenv("PIXKIT_ROOT"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: PIXKIT_ROOT: %v\n", err)
		os.Exit(cli.ExitFailure)
	}

	os.Exit(cli.Execute(cli.Env{
		Fs:        fs,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
	}, os.Args[1:]))
}
