package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) Novo(ctx context.Context)  { f.calls = append(f.calls, "novo") }
func (f *fakeExec) Pendentes()                { f.calls = append(f.calls, "pendentes") }
func (f *fakeExec) Sync(ctx context.Context)  { f.calls = append(f.calls, "sync") }
func (f *fakeExec) Importar(path string)      { f.calls = append(f.calls, "importar "+path) }
func (f *fakeExec) Alertas(ctx context.Context) {
	f.calls = append(f.calls, "alertas")
}
func (f *fakeExec) Dispensar(ctx context.Context, alertID string) {
	f.calls = append(f.calls, "dispensar "+alertID)
}
func (f *fakeExec) Status() { f.calls = append(f.calls, "status") }

func discardOutput(t *testing.T) {
	t.Helper()
	origPrintln, origPrintf := printlnFn, printfFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	printfFn = func(string, ...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printfFn = origPrintln, origPrintf })
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	discardOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"novo",
		"pendentes",
		"sync",
		"importar pdvs.csv",
		"alertas",
		"dispensar estoque-baixo",
		"status",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "online" }, bufio.NewScanner(input))

	want := []string{
		"novo",
		"pendentes",
		"sync",
		"importar pdvs.csv",
		"alertas",
		"dispensar estoque-baixo",
		"status",
	}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], want[i], exec.calls)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	discardOutput(t)

	// commands with a required argument must not dispatch without one
	input := strings.NewReader("importar\ndispensar\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "offline" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	discardOutput(t)

	input := strings.NewReader("pendentes\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "offline" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 {
		t.Fatalf("expected one call before EOF, got %v", exec.calls)
	}
}
