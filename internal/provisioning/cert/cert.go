// Package cert ensures the proxy certificate bundle exists.
//
// The bundle is a single PEM file holding the RSA private key and a
// self-signed certificate. The shell-era flow wrote key and certificate
// to intermediate files and concatenated them; here the bundle is built
// in memory and written once.
package cert

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/acdlab/acdctl/internal/provisioning"
)

// Options configures certificate generation.
type Options struct {
	KeyBits      int
	ValidityDays int
	CommonName   string
	Organization string
	Country      string
}

// GenerateBundle creates an RSA key and a self-signed certificate and
// returns them concatenated as one PEM bundle, key first.
func GenerateBundle(opts Options) ([]byte, error) {
	key, err := rsa.GenerateKey(rand.Reader, opts.KeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("generate serial: %w", err)
	}

	subject := pkix.Name{CommonName: opts.CommonName}
	if opts.Organization != "" {
		subject.Organization = []string{opts.Organization}
	}
	if opts.Country != "" {
		subject.Country = []string{opts.Country}
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               subject,
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.AddDate(0, 0, opts.ValidityDays),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	bundle := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	bundle = append(bundle, pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: der,
	})...)

	return bundle, nil
}

// Provisioner ensures the certificate bundle exists on disk.
type Provisioner struct{}

// NewProvisioner creates a new certificate provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "certificate"
}

// Provision generates the bundle unless it already exists. An existing
// bundle is kept untouched so repeated runs perform no writes.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	certCfg := ctx.Config.Certificate
	path := certCfg.BundlePath

	if _, err := os.Stat(path); err == nil {
		ctx.Log.Info().Str("bundle", path).Msg("certificate bundle exists, keeping it")
		ctx.State.BundlePath = path
		ctx.State.CertificateReused = true
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	bundle, err := GenerateBundle(Options{
		KeyBits:      certCfg.KeyBits,
		ValidityDays: certCfg.ValidityDays,
		CommonName:   certCfg.CommonName,
		Organization: certCfg.Organization,
		Country:      certCfg.Country,
	})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, bundle, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	ctx.Log.Info().Str("bundle", path).Msg("certificate bundle generated")
	ctx.State.BundlePath = path
	return nil
}
