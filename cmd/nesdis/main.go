package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grimdork/climate/arg"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/Urethramancer/nesdis/cartridge"
	"github.com/Urethramancer/nesdis/disassembler"
	"github.com/Urethramancer/nesdis/logger"
)

const logTag = "nesdis"

// failureContext is how many log entries are shown when a run fails quietly.
const failureContext = 4

type config struct {
	input   string
	output  string
	logFile string
	header  bool
	verbose bool
	help    bool
}

func newOptions() *arg.Options {
	opt := arg.New("nesdis")
	opt.SetDefaultHelp(true)
	_ = opt.SetOption(arg.GroupDefault, "o", "output", "Write the listing to a file instead of stdout.", "", false, arg.VarString, nil)
	_ = opt.SetOption(arg.GroupDefault, "l", "log", "Write the log to a file when done.", "", false, arg.VarString, nil)
	_ = opt.SetOption(arg.GroupDefault, "H", "header", "Print the cartridge header to stderr.", false, false, arg.VarBool, nil)
	_ = opt.SetOption(arg.GroupDefault, "v", "verbose", "Echo log messages to stderr.", false, false, arg.VarBool, nil)
	_ = opt.SetPositional("ROM", "iNES cartridge image to disassemble.", "", true, arg.VarString)
	return opt
}

// parseArgs reads the command line without the program name.
func parseArgs(opt *arg.Options, args []string) (config, error) {
	if err := opt.Parse(args); err != nil {
		return config{}, err
	}
	return config{
		input:   opt.GetPosString("ROM"),
		output:  opt.GetString("output"),
		logFile: opt.GetString("log"),
		header:  opt.GetBool("header"),
		verbose: opt.GetBool("verbose"),
		help:    opt.GetBool("help"),
	}, nil
}

func main() {
	opt := newOptions()
	cfg, err := parseArgs(opt, os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.help {
		opt.PrintHelp()
		return
	}

	if cfg.verbose {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		} else {
			logger.SetEcho(os.Stderr)
		}
	}

	err = run(cfg.input, cfg.output, cfg.header, os.Stdout, os.Stderr)
	if cfg.logFile != "" {
		if lerr := writeLog(cfg.logFile); lerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", lerr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		if !cfg.verbose {
			logger.Tail(os.Stderr, failureContext)
		}
		os.Exit(1)
	}
}

// run disassembles the PRG-ROM of the image at input. The listing goes to
// stdout unless output names a file; nothing is written to that file if
// decoding fails.
func run(input, output string, header bool, stdout, stderr io.Writer) error {
	logger.Clear()
	if strings.TrimSpace(input) == "" {
		return errors.New("no cartridge image given")
	}

	cart, err := cartridge.Load(input)
	if err != nil {
		return err
	}
	if header {
		fmt.Fprintf(stderr, "%s: %s\n", input, cart.Header)
	}

	// Only the PRG-ROM and its declared size reach the disassembler.
	prog, err := disassembler.DecodeProgram(cart.PRG, cart.PRGSize)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = prog.WriteTo(stdout)
		return err
	}

	if err := os.WriteFile(output, []byte(prog.Render()+"\n"), 0644); err != nil {
		return errors.Wrap(err, "writing listing")
	}
	logger.Log(logTag, "listing written to "+output)
	fmt.Fprintf(stdout, "Disassembly written to %s\n", output)
	return nil
}

func writeLog(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating log file")
	}
	logger.Write(f)
	return errors.Wrap(f.Close(), "closing log file")
}
