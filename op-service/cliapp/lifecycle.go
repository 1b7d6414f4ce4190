package cliapp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

var interruptErr = errors.New("interrupt signal")

type Lifecycle interface {
	// Start starts a service. A service only fully starts once. Subsequent starts may return an error.
	// A context is provided to end the service during setup.
	// The caller should call Stop to clean up after failing to start.
	Start(ctx context.Context) error
	// Stop stops a service gracefully.
	// The provided ctx can force an accelerated shutdown,
	// but the node still has to completely stop.
	Stop(ctx context.Context) error
	// Stopped determines if the service was already fully stopped.
	Stopped() bool
}

// LifecycleAction instantiates a Lifecycle based on a CLI context.
// The close argument may be called by the service to request the app to stop.
type LifecycleAction func(ctx *cli.Context, close context.CancelCauseFunc) (Lifecycle, error)

// interruptSignals are the signals that stop the app.
var interruptSignals = []os.Signal{
	os.Interrupt,
	os.Kill,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// LifecycleCmd turns a LifecycleAction into a CLI action, wiring interrupts
// into the lifecycle: the first interrupt stops the app gracefully, a second
// interrupt cancels the stop context.
func LifecycleCmd(fn LifecycleAction) cli.ActionFunc {
	return lifecycleCmd(fn, func(ctx context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(ctx, interruptSignals...)
	})
}

type waitSignalFn func(ctx context.Context) (context.Context, context.CancelFunc)

func lifecycleCmd(fn LifecycleAction, notify waitSignalFn) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		hostCtx := ctx.Context
		appCtx, appCancel := context.WithCancelCause(hostCtx)
		ctx.Context = appCtx

		sigCtx, sigStop := notify(appCtx)
		go func() {
			<-sigCtx.Done()
			appCancel(interruptErr)
		}()

		appLifecycle, err := fn(ctx, appCancel)
		if err != nil {
			sigStop()
			return errors.Join(
				fmt.Errorf("failed to setup: %w", err),
				context.Cause(appCtx),
			)
		}

		if err := appLifecycle.Start(appCtx); err != nil {
			sigStop()
			return errors.Join(
				fmt.Errorf("failed to start: %w", err),
				context.Cause(appCtx),
			)
		}

		// wait for app to be closed (through interrupt, or app requests to be stopped by closing the context)
		<-appCtx.Done()
		sigStop()

		// Graceful stop context. A second interrupt forces the stop.
		stopCtx, stopCancel := notify(hostCtx)
		defer stopCancel()
		stopErr := appLifecycle.Stop(stopCtx)
		if stopErr != nil {
			return errors.Join(
				fmt.Errorf("failed to stop: %w", stopErr),
				context.Cause(stopCtx),
			)
		}
		return nil
	}
}
