package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ochairo/buildcfg/internal/domain-adapters/gateways"
	"github.com/ochairo/buildcfg/internal/domain/interfaces"
	gw "github.com/ochairo/buildcfg/internal/domain/interfaces/gateways"
	"github.com/ochairo/buildcfg/internal/external-adapters/gpg"
)

func runVerify(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	var (
		keyPath  = fs.String("key", "", "Armored OpenPGP public key; also checks <descriptor>.asc")
		logLevel = fs.String("log-level", "", "Log level: debug, info, warn, error (env "+envLogLevel+")")
		quiet    = fs.Bool("quiet", false, "Only output errors (exit code indicates success/failure)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: buildcfg verify <descriptor> [options]

Verify a descriptor against its .sha256 sidecar and, with --key, its .asc signature.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: descriptor path is required\n\n")
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	logger, err := newLogger(*logLevel, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	var signer *gpg.Signer
	if *keyPath != "" {
		signer = gpg.NewSigner()
		if err := signer.ImportKeyFromFile(*keyPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitFatal
		}
		logger.Debug("imported verification key",
			interfaces.F("path", *keyPath),
			interfaces.F("entities", signer.GetKeyringSize()))
	}

	publisher := gateways.NewDescriptorPublisher(gateways.NewChecksumGateway(), signatureGateway(signer), logger.With("verifier"))
	if err := publisher.Verify(ctx, path); err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return exitFatal
	}

	if !*quiet {
		if signer != nil {
			fmt.Printf("OK: %s (checksum, signature)\n", path)
		} else {
			fmt.Printf("OK: %s (checksum)\n", path)
		}
	}
	return exitOK
}

// signatureGateway avoids handing a typed nil to the publisher
func signatureGateway(signer *gpg.Signer) gw.SignatureGateway {
	if signer == nil {
		return nil
	}
	return signer
}
