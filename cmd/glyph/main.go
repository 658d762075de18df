// Command glyph is the evaluator's CLI front end: it boots a Task,
// installs the native set, runs a program, and optionally serves a
// live call/return trace over gRPC. Grounded on the teacher's
// cmd/funxy/main.go (flag-driven backend selection feeding a single
// evaluator entry point) and pkg/cli (tty-aware output), generalized
// from funxy's lexer/parser/module-loader pipeline to this module's
// scope: spec.md excludes the reader/lexer, so glyph takes its
// program as a pre-built block constructed in Go rather than parsed
// from text — see DESIGN.md's cmd/glyph entry for the full rationale.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/glyphlang/glyph/internal/config"
	"github.com/glyphlang/glyph/internal/debugsvc"
	"github.com/glyphlang/glyph/internal/eval"
	"github.com/glyphlang/glyph/internal/natives"
	"github.com/glyphlang/glyph/internal/session"
	evalsignal "github.com/glyphlang/glyph/internal/signal"
	"github.com/glyphlang/glyph/internal/trace"
	"github.com/glyphlang/glyph/internal/value"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	debugAddr := flag.String("debug-addr", "", "if set, serve the call/return trace over gRPC at this address")
	sessionPath := flag.String("session", "", "if set, record this run's program/result to a SQLite session file")
	flag.Parse()

	if err := run(*configPath, *debugAddr, *sessionPath); err != nil {
		fmt.Fprintln(os.Stderr, "glyph:", err)
		os.Exit(1)
	}
}

func run(configPath, debugAddr, sessionPath string) error {
	eval.Boot()

	cfg := evalsignal.Config{}
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	task := eval.NewTask(cfg)
	globals := eval.NewGlobals()
	natives.Install(globals)

	logger := trace.New(os.Stdout, cfg.TraceLevel)
	dbg := debugsvc.NewServer()
	task.Sink = multiSink{logger, dbg}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	group, gctx := errgroup.WithContext(ctx)

	if debugAddr != "" {
		lis, err := net.Listen("tcp", debugAddr)
		if err != nil {
			return fmt.Errorf("listening on %s: %w", debugAddr, err)
		}
		srv := grpc.NewServer()
		srv.RegisterService(&debugsvc.ServiceDesc, dbg)
		group.Go(func() error {
			return srv.Serve(lis)
		})
		group.Go(func() error {
			<-gctx.Done()
			srv.GracefulStop()
			return nil
		})

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		group.Go(func() error {
			select {
			case <-sigCh:
				cancel()
			case <-gctx.Done():
			}
			return nil
		})
	}

	program := demoProgram()
	result, thrown := eval.RunBlock(task, globals, program)
	output := describe(result, thrown)
	printResult(output)

	if sessionPath != "" {
		store, err := session.Open(sessionPath)
		if err != nil {
			return fmt.Errorf("opening session store: %w", err)
		}
		defer store.Close()
		if err := store.Record("demoProgram", output); err != nil {
			return fmt.Errorf("recording session: %w", err)
		}
	}

	if debugAddr == "" {
		return nil
	}
	return group.Wait()
}

func printResult(output string) {
	// isatty only changes whether a future version would color the
	// output; plain stdout today either way.
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(output)
		return
	}
	fmt.Println(output)
}

// demoProgram builds x: 1 + 2 * 3 print x as a Block: assignment,
// infix chain, then a final call reading x back — exercising
// SET_WORD, infix lookahead, and native dispatch without requiring a
// reader.
func demoProgram() *value.Block {
	setX := value.Word(value.SET_WORD, value.Intern("x"))
	plus := value.Word(value.WORD, value.Intern("+"))
	times := value.Word(value.WORD, value.Intern("*"))
	x := value.Word(value.WORD, value.Intern("x"))
	printWord := value.Word(value.WORD, value.Intern("print"))

	return value.MakeBlock(
		setX, value.Integer(1), plus, value.Integer(2), times, value.Integer(3),
		printWord, x,
	)
}

func describe(v value.Value, thrown bool) string {
	if thrown {
		if e := v.AsError(); e != nil {
			return fmt.Sprintf("** error: %s", e.Error())
		}
		return "** error: unknown"
	}
	return fmt.Sprintf("== %s", v.Kind)
}

// sink is the narrow surface eval.Sink requires; declared locally
// rather than imported so multiSink can fan out to heterogeneous
// implementations (trace.Logger, debugsvc.Server) without either of
// those packages depending on internal/eval's Sink type directly.
type sink interface {
	OnCall(taskID uuid.UUID, label string, depth int)
	OnReturn(taskID uuid.UUID, label string, depth int)
}

// multiSink fans a Task's call/return events out to every attached
// sink (the text tracer and the gRPC debug server).
type multiSink []sink

func (m multiSink) OnCall(taskID uuid.UUID, label string, depth int) {
	for _, s := range m {
		s.OnCall(taskID, label, depth)
	}
}

func (m multiSink) OnReturn(taskID uuid.UUID, label string, depth int) {
	for _, s := range m {
		s.OnReturn(taskID, label, depth)
	}
}
