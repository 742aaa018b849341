// Package gateways defines interfaces for descriptor output side effects.
package gateways

import "context"

// ChecksumGateway writes and verifies SHA-256 sidecar files
type ChecksumGateway interface {
	// WriteChecksumFile writes <path>.sha256 and returns the hex digest
	WriteChecksumFile(ctx context.Context, path string) (string, error)

	// VerifyChecksumFile checks path against its <path>.sha256 sidecar
	VerifyChecksumFile(ctx context.Context, path string) error
}

// SignatureGateway produces and checks detached signatures
type SignatureGateway interface {
	// SignFile writes an armored detached signature of filePath to sigPath
	SignFile(filePath, sigPath string) error

	// VerifySignatureFromFile checks filePath against the signature in sigPath
	VerifySignatureFromFile(filePath, sigPath string) error
}
