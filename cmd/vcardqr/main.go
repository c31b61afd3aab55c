// Command vcardqr renders a contact card as a QR code with an optional
// centered logo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdout, os.Stderr, nil)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "vcardqr:", err)
		stop()
		os.Exit(1)
	}
}
