package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn and printfFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printfFn  = fmt.Printf
)

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests substitute a lightweight stub.
type execIface interface {
	Novo(ctx context.Context)
	Pendentes()
	Sync(ctx context.Context)
	Importar(path string)
	Alertas(ctx context.Context)
	Dispensar(ctx context.Context, alertID string)
	Status()
}

func (a *App) statusLine() string {
	if a.monitor.Online() {
		return "online"
	}
	return "offline"
}

// Sync runs one reconciliation pass on demand.
func (a *App) Sync(ctx context.Context) {
	if err := a.service.SyncNow(ctx); err != nil {
		printlnFn("Sync failed:", err)
		return
	}
	printfFn("Done. %d protocolo(s) still pending.\n", a.buffer.PendingCount())
}

// Status prints the connection state and the pending backlog size.
func (a *App) Status() {
	printfFn("Connection: %s, pending protocolos: %d\n", a.statusLine(), a.buffer.PendingCount())
}

func (a *App) Main(ctx context.Context) {
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

// runREPL reads lines from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Command handlers report their
// own failures to the user; nothing propagates back into the loop. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Protocolos CLI (type 'help' for commands)")

	for {
		printfFn("protocolos [%s] > ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: novo, pendentes, sync, importar <arquivo>, alertas, dispensar <id>, status, exit")

		case "novo":
			a.Novo(ctx)

		case "pendentes":
			a.Pendentes()

		case "sync":
			a.Sync(ctx)

		case "importar":
			if len(args) == 0 {
				printlnFn("Usage: importar <arquivo.csv|.xlsx|.xls>")
				continue
			}
			a.Importar(args[0])

		case "alertas":
			a.Alertas(ctx)

		case "dispensar":
			if len(args) == 0 {
				printlnFn("Usage: dispensar <alerta-id>")
				continue
			}
			a.Dispensar(ctx, args[0])

		case "status":
			a.Status()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
