// Command wrenport is the host driver: it constructs a VM, runs
// Bootstrap, and either reports success (boot), evaluates a couple of
// fixed fiber demonstrations (demo), or drives those same
// demonstrations interactively (repl). It is explicitly a collaborator,
// not core (spec.md §1) — there is no general-purpose script parser
// here, since the full language compiler is out of scope for this
// runtime.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chzyer/readline"
	humanize "github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/redthing1/wren-port/corevm"
	"github.com/redthing1/wren-port/hostcfg"
	"github.com/redthing1/wren-port/value"
)

func main() {
	app := &cli.Command{
		Name:  "wrenport",
		Usage: "host driver for the embeddable core runtime",
		Commands: []*cli.Command{
			bootCommand,
			demoCommand,
			replCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wrenport: %v\n", err)
		os.Exit(1)
	}
}

// newVM builds and bootstraps a VM, wiring write/error straight to
// stdout/stderr (spec.md §6).
func newVM() (*corevm.VM, error) {
	config := hostcfg.Default()
	config.Write = func(text string) { fmt.Print(text) }
	config.Error = func(kind hostcfg.ErrorKind, module string, line int, message string) {
		fmt.Fprintf(os.Stderr, "[%s line %d] in %s: %s\n", errorKindName(kind), line, module, message)
	}

	vm := corevm.New(config)
	if err := vm.Bootstrap(); err != nil {
		return nil, err
	}
	return vm, nil
}

func errorKindName(k hostcfg.ErrorKind) string {
	switch k {
	case hostcfg.CompileError:
		return "Compile Error"
	case hostcfg.RuntimeError:
		return "Runtime Error"
	case hostcfg.StackTraceError:
		return "Stack Trace"
	default:
		return "Error"
	}
}

var bootCommand = &cli.Command{
	Name:  "boot",
	Usage: "construct a VM and run bootstrap, reporting the root classes found",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		start := time.Now()
		vm, err := newVM()
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		core := vm.CoreModule()
		names := core.Names()
		fmt.Printf("bootstrap ok: %s (id %s, %s elapsed, %s declared)\n",
			humanize.Comma(int64(len(names))), vm.ID, elapsed, pluralize(len(names), "class"))
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return nil
	},
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "run the fixed fiber demonstrations from spec §8 and print their results",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		vm, err := newVM()
		if err != nil {
			return err
		}
		for _, scenario := range demoScenarios {
			fmt.Printf("%-42s", scenario.name)
			result, err := scenario.run(vm)
			if err != nil {
				fmt.Printf("ERROR: %v\n", err)
				continue
			}
			fmt.Printf("=> %s\n", result)
		}
		return nil
	},
}

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "interactively pick one of the demo scenarios to run",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		vm, err := newVM()
		if err != nil {
			return err
		}

		rl, err := readline.New("wrenport> ")
		if err != nil {
			return err
		}
		defer rl.Close()

		fmt.Println("wrenport repl — type a scenario number, 'list', or 'quit'")
		for {
			line, err := rl.Readline()
			if err != nil { // io.EOF or readline.ErrInterrupt
				return nil
			}
			switch line {
			case "", "list":
				for i, s := range demoScenarios {
					fmt.Printf("  %d: %s\n", i, s.name)
				}
			case "quit", "exit":
				return nil
			default:
				runNumberedScenario(vm, line)
			}
		}
	},
}

func runNumberedScenario(vm *corevm.VM, line string) {
	var idx int
	if _, err := fmt.Sscanf(line, "%d", &idx); err != nil || idx < 0 || idx >= len(demoScenarios) {
		fmt.Println("unknown scenario; type 'list'")
		return
	}
	scenario := demoScenarios[idx]
	result, err := scenario.run(vm)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return
	}
	fmt.Printf("=> %s\n", result)
}

type scenario struct {
	name string
	run  func(vm *corevm.VM) (string, error)
}

// describeResult renders a Value the same way the demo/repl commands
// report every scenario's outcome, independent of corevm's internal
// error-message formatter.
func describeResult(v value.Value) string {
	switch {
	case v.IsNull():
		return "null"
	case v.IsNum():
		n, _ := v.AsNum()
		return fmt.Sprintf("%g", n)
	case v.IsBool():
		b, _ := v.AsBool()
		return fmt.Sprintf("%t", b)
	case v.IsString():
		return fmt.Sprintf("%q", v.AsString().Text)
	default:
		return v.Obj().Kind.String()
	}
}
