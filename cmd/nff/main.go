package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/npillmayer/nff/analysis"
	"github.com/npillmayer/nff/grammar"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

// Exit codes of the command. exitRead covers both the grammar file and the
// configuration file.
const (
	exitOK = iota
	exitInternal
	exitUsage
	exitRead
	exitGrammar
)

// errUsage is returned for calls with a wrong number of arguments.
var errUsage = errors.New("expecting exactly one grammar file")

// options are the settings for a single invocation.
type options struct {
	cfg         Config
	interactive bool
	file        string // grammar file, may be empty for interactive sessions
	usage       string
}

// parseArgs evaluates the command line, reading a configuration file if one
// is given. Flags set explicitly override settings from the configuration.
func parseArgs(args []string) (*options, error) {
	flags := pflag.NewFlagSet("nff", pflag.ContinueOnError)
	flags.SetOutput(ioutil.Discard)
	sorted := flags.BoolP("sorted", "s", false, "print set members sorted")
	rules := flags.BoolP("rules", "r", false, "print the rules before the results")
	timing := flags.Bool("timing", false, "report the time the analysis took")
	digest := flags.Bool("digest", false, "print a digest of the results")
	trace := flags.StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	config := flags.StringP("config", "c", "", "TOML configuration file")
	interactive := flags.BoolP("interactive", "i", false, "start an interactive session")
	opts := &options{usage: flags.FlagUsages()}
	if err := flags.Parse(args); err != nil {
		return opts, fmt.Errorf("%v: %w", err, errUsage)
	}
	opts.cfg = defaultConfig()
	if *config != "" {
		cfg, err := loadConfig(*config)
		if err != nil {
			return opts, err
		}
		opts.cfg = cfg
	}
	if flags.Changed("sorted") {
		opts.cfg.Sorted = *sorted
	}
	if flags.Changed("rules") {
		opts.cfg.Rules = *rules
	}
	if flags.Changed("timing") {
		opts.cfg.Timing = *timing
	}
	if flags.Changed("digest") {
		opts.cfg.Digest = *digest
	}
	if flags.Changed("trace") {
		opts.cfg.Trace = *trace
	}
	opts.interactive = *interactive
	switch n := flags.NArg(); {
	case n == 1:
		opts.file = flags.Arg(0)
	case n == 0 && opts.interactive:
	default:
		return opts, errUsage
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command and returns its exit code.
func run(args []string) int {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	opts, err := parseArgs(args)
	if err != nil {
		pterm.Error.Println(err.Error())
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "usage: nff [flags] <grammar-file>\n%s", opts.usage)
			return exitUsage
		}
		return exitRead
	}
	setTraceLevel(opts.cfg.Trace)
	if opts.interactive {
		return interactive(opts)
	}
	rt, code := loadGrammar(opts.file)
	if code != exitOK {
		return code
	}
	if opts.cfg.Rules {
		printRules(rt)
	}
	start := time.Now()
	ga := analysis.Analyse(rt)
	elapsed := time.Since(start)
	if opts.cfg.Timing {
		pterm.Info.Println(fmt.Sprintf("Execution time: %v", elapsed))
	}
	printResults(ga, opts.cfg.Sorted)
	if opts.cfg.Digest {
		d, err := ga.Digest()
		if err != nil {
			pterm.Error.Println(err.Error())
			return exitInternal
		}
		pterm.Info.Println("Digest: " + d)
	}
	ga.Dump()
	return exitOK
}

// loadGrammar reads and loads a grammar file, returning an exit code other
// than exitOK on failure.
func loadGrammar(path string) (*grammar.RuleTable, int) {
	f, err := os.Open(path)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("cannot open grammar file: %v", err))
		return nil, exitRead
	}
	defer f.Close()
	rt, err := grammar.Load(path, f)
	if err != nil {
		pterm.Error.Println(err.Error())
		if errors.Is(err, grammar.ErrRead) {
			return nil, exitRead
		}
		return nil, exitGrammar
	}
	return rt, exitOK
}

var traceKeys = []string{"nff.cli", "nff.grammar", "nff.analysis", "nff.scanner"}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", l)
}
