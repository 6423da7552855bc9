package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openminted/xsdgen/internal/codegen/generator"
)

// watch reruns regenerate on schema changes until the process is interrupted.
func watch(gen *generator.Generator, opts generator.WatchOptions, regenerate func() error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := gen.Watch(opts)
	if err != nil {
		return err
	}
	return w.Run(ctx, regenerate)
}
