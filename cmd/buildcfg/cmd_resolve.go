package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/buildcfg/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/buildcfg/internal/domain-orchestrators"
	"github.com/ochairo/buildcfg/internal/domain/entities"
	"github.com/ochairo/buildcfg/internal/domain/interfaces"
	"github.com/ochairo/buildcfg/internal/external-adapters/gpg"
	"github.com/ochairo/buildcfg/internal/external-adapters/logging"
	"github.com/ochairo/buildcfg/internal/external-adapters/properties"
	"github.com/ochairo/buildcfg/internal/external-adapters/render"
	"github.com/ochairo/buildcfg/internal/external-adapters/yaml"
)

type resolveOptions struct {
	propertiesPath string
	appDir         string
	projectPath    string
	pluginPath     string
	format         string
	outputPath     string
	showSecrets    bool
	signKey        string
	variant        string
	logLevel       string
	jsonLogs       bool
}

func runResolve(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	var opts resolveOptions
	fs.StringVar(&opts.propertiesPath, "properties", "local.properties", "Path to local.properties (optional on disk)")
	fs.StringVar(&opts.appDir, "app-dir", "app", "App module directory; relative storeFile paths resolve against it")
	fs.StringVar(&opts.projectPath, "project", "buildcfg.yml", "YAML project settings overrides (optional on disk)")
	fs.StringVar(&opts.pluginPath, "plugin", "", "YAML Flutter plugin settings overrides")
	fs.StringVar(&opts.format, "format", "yaml", "Output format: yaml or json")
	fs.StringVar(&opts.outputPath, "output", "", "Write descriptor to file (default: stdout)")
	fs.BoolVar(&opts.showSecrets, "show-secrets", false, "Render signing passwords instead of redacting them")
	fs.StringVar(&opts.signKey, "sign-key", "", "Armored OpenPGP private key for a detached descriptor signature")
	fs.StringVar(&opts.variant, "variant", "", "Only emit one variant (debug or release)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env "+envLogLevel+")")
	fs.BoolVar(&opts.jsonLogs, "json-logs", false, "Emit logs as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: buildcfg resolve [options]

Resolve local.properties and project defaults into a build descriptor
for the debug and release variants.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Exit Codes:
  0  Descriptor resolved
  1  Fatal configuration error (e.g. non-integer flutter.versionCode)
  2  Usage error

Examples:
  buildcfg resolve
  buildcfg resolve --properties android/local.properties --app-dir android/app
  buildcfg resolve --format json --output build/descriptor.json
  buildcfg resolve --output build/descriptor.yml --sign-key ci-signing.asc
`)
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
	if opts.signKey != "" && opts.outputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --sign-key requires --output\n")
		return exitUsage
	}
	variant := entities.VariantName(opts.variant)
	if variant != "" && variant != entities.VariantDebug && variant != entities.VariantRelease {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", opts.variant)
		return exitUsage
	}

	logger, err := newLogger(opts.logLevel, opts.jsonLogs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	if err := executeResolve(ctx, opts, format, variant, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFatal
	}
	return exitOK
}

func executeResolve(ctx context.Context, opts resolveOptions, format render.Format, variant entities.VariantName, logger *logging.Logger) error {
	appDir, err := filepath.Abs(opts.appDir)
	if err != nil {
		return fmt.Errorf("failed to resolve app directory: %w", err)
	}

	orch := orchestrators.NewResolveOrchestrator(
		properties.NewLoader(),
		yaml.NewSettingsRepository(),
		orchestrators.ResolveConfig{
			PropertiesPath: opts.propertiesPath,
			AppDir:         appDir,
			ProjectPath:    opts.projectPath,
			PluginPath:     opts.pluginPath,
		},
		logger.With("resolver"),
	)

	result, err := orch.Resolve(ctx)
	if err != nil {
		return err
	}

	data, err := render.EncodeBytes(result.Descriptor, render.Options{
		Format:      format,
		ShowSecrets: opts.showSecrets,
		Variant:     variant,
	})
	if err != nil {
		return err
	}

	if opts.outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	var signer *gpg.Signer
	if opts.signKey != "" {
		signer, err = loadSigner(opts.signKey, logger)
		if err != nil {
			return err
		}
	}

	publisher := gateways.NewDescriptorPublisher(gateways.NewChecksumGateway(), signatureGateway(signer), logger.With("publisher"))
	published, err := publisher.Publish(ctx, opts.outputPath, data)
	if err != nil {
		return err
	}

	logger.Info("wrote descriptor",
		interfaces.F("path", published.Path),
		interfaces.F("sha256", published.Checksum),
		interfaces.F("signed", published.SignaturePath != ""))
	return nil
}

// loadSigner imports the signing key, unlocking it with the passphrase from the environment
func loadSigner(keyPath string, logger interfaces.Logger) (*gpg.Signer, error) {
	signer := gpg.NewSigner()
	if err := signer.ImportKeyFromFile(keyPath); err != nil {
		return nil, err
	}
	logger.Debug("imported signing key",
		interfaces.F("path", keyPath),
		interfaces.F("entities", signer.GetKeyringSize()))
	if passphrase := os.Getenv(envSignPassphrase); passphrase != "" {
		if err := signer.Unlock([]byte(passphrase)); err != nil {
			return nil, err
		}
	}
	return signer, nil
}
