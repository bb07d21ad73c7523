package cli

import (
	"context"
	"time"
)

// Alertas lists the alert ids dismissed today.
func (a *App) Alertas(ctx context.Context) {
	ids, err := a.alerts.Dismissed(ctx, time.Now())
	if err != nil {
		printlnFn("Could not read dismissed alerts:", err)
		return
	}
	if len(ids) == 0 {
		printlnFn("Nenhum alerta dispensado hoje.")
		return
	}
	printfFn("%d alerta(s) dispensado(s) hoje:\n", len(ids))
	for _, id := range ids {
		printlnFn("  " + id)
	}
}

// Dispensar marks an alert as dismissed for today.
func (a *App) Dispensar(ctx context.Context, alertID string) {
	if err := a.alerts.Dismiss(ctx, alertID, time.Now()); err != nil {
		printlnFn("Could not dismiss alert:", err)
		return
	}
	printfFn("Alerta %s dispensado até amanhã.\n", alertID)
}
