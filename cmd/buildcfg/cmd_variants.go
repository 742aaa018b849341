package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ochairo/buildcfg/internal/domain/entities"
	"github.com/ochairo/buildcfg/internal/domain/services"
)

func runVariants(_ context.Context, args []string) int {
	fs := flag.NewFlagSet("variants", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: buildcfg variants

List build variants and the packaging flags they always carry.
`)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	project := entities.DefaultProjectSettings()
	variants := services.NewConfigService().AssembleVariants(
		entities.SigningIdentity{Name: entities.SigningRelease},
		project,
	)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tSIGNING\tMINIFY\tSHRINK\tDEBUGGABLE")
	for _, v := range variants {
		fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%t\n", v.Name, v.Signing.Name, v.MinifyEnabled, v.ShrinkResources, v.Debuggable)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFatal
	}
	return exitOK
}
