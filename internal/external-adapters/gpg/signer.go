// Package gpg provides OpenPGP signing and verification of build descriptors.
package gpg

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

const armoredSignaturePrefix = "-----BEGIN PGP SIGNATURE---"

// Signer implements detached descriptor signatures using ProtonMail's go-crypto,
// a maintained fork of golang.org/x/crypto/openpgp
type Signer struct {
	keyring openpgp.EntityList
}

// NewSigner creates a signer with an empty keyring
func NewSigner() *Signer {
	return &Signer{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyFromFile imports public or private keys from an armored or binary key file
func (s *Signer) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is user-provided for key import
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	return s.ImportKey(data)
}

// ImportKey imports keys from armored or binary key material
func (s *Signer) ImportKey(data []byte) error {
	entities, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		entities, err = openpgp.ReadKeyRing(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in key material")
	}

	s.keyring = append(s.keyring, entities...)
	return nil
}

// Unlock decrypts every encrypted private key in the keyring with passphrase
func (s *Signer) Unlock(passphrase []byte) error {
	for _, entity := range s.keyring {
		if entity.PrivateKey != nil && entity.PrivateKey.Encrypted {
			if err := entity.PrivateKey.Decrypt(passphrase); err != nil {
				return fmt.Errorf("failed to decrypt private key %X: %w", entity.PrimaryKey.Fingerprint, err)
			}
		}
		for _, sub := range entity.Subkeys {
			if sub.PrivateKey != nil && sub.PrivateKey.Encrypted {
				if err := sub.PrivateKey.Decrypt(passphrase); err != nil {
					return fmt.Errorf("failed to decrypt subkey %X: %w", sub.PublicKey.Fingerprint, err)
				}
			}
		}
	}
	return nil
}

// SignFile writes an armored detached signature of filePath to sigPath
func (s *Signer) SignFile(filePath, sigPath string) error {
	signer, err := s.signingEntity()
	if err != nil {
		return err
	}

	//nolint:gosec // G304: filePath is the descriptor written by this tool
	dataFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer dataFile.Close()

	var sig bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&sig, signer, dataFile, nil); err != nil {
		return fmt.Errorf("failed to sign %s: %w", filePath, err)
	}

	if err := os.WriteFile(sigPath, sig.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write signature: %w", err)
	}
	return nil
}

// VerifySignatureFromFile verifies a detached signature from a local file
func (s *Signer) VerifySignatureFromFile(filePath, sigPath string) error {
	if len(s.keyring) == 0 {
		return fmt.Errorf("no keys imported, call ImportKeyFromFile first")
	}

	//nolint:gosec // G304: sigPath is user-provided for verification
	sigData, err := os.ReadFile(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}

	//nolint:gosec // G304: filePath is user-provided for verification
	dataFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer dataFile.Close()

	var verifyErr error
	if bytes.HasPrefix(sigData, []byte(armoredSignaturePrefix)) {
		_, verifyErr = openpgp.CheckArmoredDetachedSignature(s.keyring, dataFile, bytes.NewReader(sigData), nil)
	} else {
		_, verifyErr = openpgp.CheckDetachedSignature(s.keyring, dataFile, bytes.NewReader(sigData), nil)
	}

	if verifyErr != nil {
		return fmt.Errorf("signature verification failed: %w", verifyErr)
	}
	return nil
}

// GetKeyringSize returns the number of keys in the keyring
func (s *Signer) GetKeyringSize() int {
	return len(s.keyring)
}

// signingEntity returns the first entity holding a usable private key
func (s *Signer) signingEntity() (*openpgp.Entity, error) {
	for _, entity := range s.keyring {
		if entity.PrivateKey == nil {
			continue
		}
		if entity.PrivateKey.Encrypted {
			return nil, errors.New("private key is encrypted, call Unlock first")
		}
		return entity, nil
	}
	return nil, errors.New("no private key imported")
}
