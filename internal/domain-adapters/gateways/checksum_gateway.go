// Package gateways implements output side effects for rendered descriptors.
package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ChecksumSuffix is appended to a file path to name its sidecar
const ChecksumSuffix = ".sha256"

// checksumGateway implements gateways.ChecksumGateway using pure Go
type checksumGateway struct{}

// NewChecksumGateway creates a new checksum gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewChecksumGateway() *checksumGateway {
	return &checksumGateway{}
}

// CalculateChecksum calculates the SHA256 checksum of a file
func (g *checksumGateway) CalculateChecksum(filePath string) (string, error) {
	//nolint:gosec // G304: File path is user-provided for checksum calculation
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyChecksum verifies a file's SHA256 checksum
func (g *checksumGateway) VerifyChecksum(_ context.Context, filePath, expectedSum string) error {
	actualSum, err := g.CalculateChecksum(filePath)
	if err != nil {
		return err
	}

	if actualSum != strings.ToLower(expectedSum) {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expectedSum, actualSum)
	}

	return nil
}

// WriteChecksumFile writes "<hex>  <basename>" to path+".sha256"
func (g *checksumGateway) WriteChecksumFile(_ context.Context, path string) (string, error) {
	sum, err := g.CalculateChecksum(path)
	if err != nil {
		return "", err
	}

	line := fmt.Sprintf("%s  %s\n", sum, filepath.Base(path))
	if err := os.WriteFile(path+ChecksumSuffix, []byte(line), 0600); err != nil {
		return "", fmt.Errorf("failed to write checksum file: %w", err)
	}

	return sum, nil
}

// VerifyChecksumFile checks path against the digest stored in path+".sha256"
func (g *checksumGateway) VerifyChecksumFile(ctx context.Context, path string) error {
	//nolint:gosec // G304: sidecar of a user-provided descriptor path
	data, err := os.ReadFile(path + ChecksumSuffix)
	if err != nil {
		return fmt.Errorf("failed to read checksum file: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 || len(fields[0]) != sha256.Size*2 {
		return fmt.Errorf("malformed checksum file %s", path+ChecksumSuffix)
	}

	return g.VerifyChecksum(ctx, path, fields[0])
}
