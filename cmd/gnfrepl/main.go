package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/greibach/cfg"
	"github.com/npillmayer/greibach/gnf"
	"github.com/npillmayer/greibach/syntax"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'greibach.repl'.
func tracer() tracing.Trace {
	return tracing.Select("greibach.repl")
}

// main() starts an interactive CLI where users enter grammar rules, one
// per line ("A -> aB | b", uppercase = variable, lowercase = terminal),
// and commands starting with ':'. The main command is :gnf, which runs
// the construction engine and prints the grammar at every stage.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("greibach.cfg").SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("greibach.gnf").SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("greibach.syntax").SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to the GNF workbench")
	pterm.Info.Println("Enter rules like  A -> aB | b  and run :gnf")
	pterm.Info.Println("Commands: :gnf :check :derive <n> :list :reset")
	//
	repl, err := readline.New("gnf> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// Intp is our interpreter object.
type Intp struct {
	repl  *readline.Instance
	rules []string // grammar rules entered so far
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.execute(line); quit {
				break
			}
			continue
		}
		intp.rules = append(intp.rules, line)
	}
	println("Good bye!")
}

func (intp *Intp) execute(line string) bool {
	args := strings.Fields(line)
	switch args[0] {
	case ":quit":
		return true
	case ":reset":
		intp.rules = nil
		pterm.Info.Println("grammar cleared")
	case ":list":
		for _, r := range intp.rules {
			fmt.Println(r)
		}
	case ":check":
		g, err := intp.grammar()
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		pterm.Info.Printf("GNF: %v, CNF: %v\n", cfg.IsGNF(g), cfg.IsCNF(g))
	case ":derive":
		maxLen := 4
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[1]); err == nil {
				maxLen = n
			}
		}
		g, err := intp.grammar()
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		words := g.DeriveUpTo(g.Start(), maxLen)
		pterm.Info.Printf("%d words of length ≤ %d:\n", len(words), maxLen)
		for _, w := range words {
			fmt.Println(w)
		}
	case ":gnf":
		intp.normalize()
	default:
		pterm.Error.Printf("unknown command %s\n", args[0])
	}
	return false
}

func (intp *Intp) grammar() (*cfg.Grammar, error) {
	if len(intp.rules) == 0 {
		return nil, fmt.Errorf("no grammar rules entered yet")
	}
	return syntax.Parse("G", strings.Join(intp.rules, "\n"))
}

// normalize runs the four-phase construction and prints the grammar at
// every stage boundary.
func (intp *Intp) normalize() {
	g, err := intp.grammar()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	engine := gnf.NewEngine(gnf.WithSnapshots(true))
	if err := engine.Normalize(g); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	for _, snap := range engine.Snapshots() {
		pterm.DefaultSection.Println(snap.Stage.String())
		for _, rule := range snap.Rules {
			fmt.Println(rule)
		}
		pterm.Info.Printf("fingerprint %s\n", snap.Fingerprint)
	}
	diag := engine.Diagnostics()
	for _, d := range diag.Dropped {
		pterm.Error.Printf("dropped %s -> %s (no entry for %s)\n",
			d.Head.Name, d.Body, d.Missing.Name)
	}
	if cfg.IsGNF(g) {
		pterm.Info.Println("grammar is in Greibach Normal Form")
	}
}
