package gateways

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/buildcfg/internal/domain/interfaces"
	gw "github.com/ochairo/buildcfg/internal/domain/interfaces/gateways"
)

// SignatureSuffix is appended to a file path to name its detached signature
const SignatureSuffix = ".asc"

// PublishResult describes the files written for a descriptor
type PublishResult struct {
	Path          string
	Checksum      string
	ChecksumPath  string
	SignaturePath string // Empty when unsigned
}

// DescriptorPublisher writes a rendered descriptor with its sidecars
type DescriptorPublisher struct {
	checksums gw.ChecksumGateway
	signer    gw.SignatureGateway // Optional
	logger    interfaces.Logger
}

// NewDescriptorPublisher creates a publisher; signer may be nil
func NewDescriptorPublisher(checksums gw.ChecksumGateway, signer gw.SignatureGateway, logger interfaces.Logger) *DescriptorPublisher {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &DescriptorPublisher{
		checksums: checksums,
		signer:    signer,
		logger:    logger,
	}
}

// Publish writes data to path, then the .sha256 sidecar and, when a signer is set, the .asc signature
func (p *DescriptorPublisher) Publish(ctx context.Context, path string, data []byte) (*PublishResult, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write descriptor: %w", err)
	}
	result := &PublishResult{Path: path}

	sum, err := p.checksums.WriteChecksumFile(ctx, path)
	if err != nil {
		return nil, err
	}
	result.Checksum = sum
	result.ChecksumPath = path + ChecksumSuffix
	p.logger.Debug("wrote checksum", interfaces.F("path", result.ChecksumPath), interfaces.F("sha256", sum))

	if p.signer != nil {
		sigPath := path + SignatureSuffix
		if err := p.signer.SignFile(path, sigPath); err != nil {
			return nil, err
		}
		result.SignaturePath = sigPath
		p.logger.Debug("wrote signature", interfaces.F("path", sigPath))
	}

	return result, nil
}

// Verify checks the checksum sidecar and, when a signer is set, the detached signature
func (p *DescriptorPublisher) Verify(ctx context.Context, path string) error {
	if err := p.checksums.VerifyChecksumFile(ctx, path); err != nil {
		return err
	}
	if p.signer != nil {
		if err := p.signer.VerifySignatureFromFile(path, path+SignatureSuffix); err != nil {
			return err
		}
	}
	return nil
}
