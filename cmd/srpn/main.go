package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"golang.org/x/term"

	"github.com/yao-sq/calculator"
)

const greeting = "You can now start interacting with the SRPN calculator"

// run executes every script in order within one session, or reads in if
// there are none.
func run(scripts []string, in io.Reader, out io.Writer) error {
	calc := calculator.New(out)
	if len(scripts) == 0 {
		return calc.Run(in)
	}
	for _, name := range scripts {
		log.LogVf("running %s", name)
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = calc.Run(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func shouldGreet(quiet bool, scripts int, interactive bool) bool {
	return !quiet && scripts == 0 && interactive
}

func main() {
	verbose := flag.Bool("v", false, "trace every command on stderr")
	quiet := flag.Bool("q", false, "do not print the greeting on a terminal")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: srpn [-v] [-q] [script ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		log.SetLogLevel(log.Verbose)
	}

	if shouldGreet(*quiet, flag.NArg(), term.IsTerminal(int(os.Stdin.Fd()))) {
		fmt.Println(greeting)
	}

	if err := run(flag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Errf("%v", err)
		os.Exit(1)
	}
}
