package gateways

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type mockSigner struct {
	signed   []string
	signErr  error
	verifyOK bool
}

func (m *mockSigner) SignFile(filePath, sigPath string) error {
	if m.signErr != nil {
		return m.signErr
	}
	m.signed = append(m.signed, filePath)
	return os.WriteFile(sigPath, []byte("-----BEGIN PGP SIGNATURE-----\n"), 0600)
}

func (m *mockSigner) VerifySignatureFromFile(_, _ string) error {
	if !m.verifyOK {
		return errors.New("signature verification failed")
	}
	return nil
}

func TestDescriptorPublisher_Publish_Unsigned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "descriptor.yml")
	publisher := NewDescriptorPublisher(NewChecksumGateway(), nil, nil)

	result, err := publisher.Publish(context.Background(), path, []byte("namespace: com.tasksy.app\n"))
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if result.SignaturePath != "" {
		t.Errorf("SignaturePath = %q, want empty", result.SignaturePath)
	}
	if _, err := os.Stat(result.ChecksumPath); err != nil {
		t.Errorf("checksum sidecar missing: %v", err)
	}
	if err := publisher.Verify(context.Background(), path); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestDescriptorPublisher_Publish_Signed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptor.yml")
	signer := &mockSigner{verifyOK: true}
	publisher := NewDescriptorPublisher(NewChecksumGateway(), signer, nil)

	result, err := publisher.Publish(context.Background(), path, []byte("x"))
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if result.SignaturePath != path+SignatureSuffix {
		t.Errorf("SignaturePath = %q, want %q", result.SignaturePath, path+SignatureSuffix)
	}
	if len(signer.signed) != 1 || signer.signed[0] != path {
		t.Errorf("signer called with %v", signer.signed)
	}
	if err := publisher.Verify(context.Background(), path); err != nil {
		t.Errorf("Verify() error = %v", err)
	}

	signer.verifyOK = false
	if err := publisher.Verify(context.Background(), path); err == nil {
		t.Error("Verify() should fail when the signature does not verify")
	}
}

func TestDescriptorPublisher_Publish_SignError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptor.yml")
	publisher := NewDescriptorPublisher(NewChecksumGateway(), &mockSigner{signErr: errors.New("no private key imported")}, nil)

	if _, err := publisher.Publish(context.Background(), path, []byte("x")); err == nil {
		t.Fatal("Publish() should propagate signing errors")
	}
}
