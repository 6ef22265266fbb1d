// Command paretodp computes optimal interval clusterings of point files.
//
//	paretodp solve data/instance.txt --criterion median -k 4 --verify
//	paretodp front data/instance.txt -k 10 --out front.csv
//	paretodp bench data/ -k 2,3,4,5
package main

import (
	"io"
	"os"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command with args and flushes metrics whatever the
// outcome.
func execute(args []string, out, errOut io.Writer) (err error) {
	a := newApp(errOut)
	defer func() {
		if ferr := a.flushMetrics(); err == nil {
			err = ferr
		}
	}()

	cmd := newRootCommand(a, out)
	cmd.SetArgs(args)

	return cmd.Execute()
}
