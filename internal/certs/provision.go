// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package certs provisions the throwaway self-signed certificate bundle that
// enables TLS on the local database container.
//
// The bundle is three files (ca.key, server.key, server.crt) treated as an
// atomic unit: every invocation removes and regenerates all of them, never
// updating one in isolation. The server key must be owner-read/write only or
// postgres refuses to start; on Linux hosts the files are additionally chowned
// to the containerized postgres UID so the bind-mounted files stay readable.
package certs

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// File names of the certificate bundle inside the output directory.
const (
	CAKeyFile      = "ca.key"
	ServerKeyFile  = "server.key"
	ServerCertFile = "server.crt"
)

const keyBits = 2048

// validity is deliberately short; the bundle is regenerated on every dbstart.
const validity = 90 * 24 * time.Hour

// Options controls certificate provisioning.
type Options struct {
	// Dir is the output directory for the bundle. Required.
	Dir string
	// Hosts are the DNS names and IP addresses the server certificate is
	// valid for. Defaults to localhost, 127.0.0.1 and ::1.
	Hosts []string
	// OwnerUID is the UID the bundle files are chowned to on Linux hosts so
	// the containerized database process can read them. Negative skips the
	// chown entirely (non-Linux hosts always skip it).
	OwnerUID int
}

// Bundle holds the absolute paths of the generated files.
type Bundle struct {
	CAKey      string
	ServerKey  string
	ServerCert string
}

// Provision replaces the certificate bundle in opts.Dir. Any failure aborts
// with no partial-success mode; callers treat it as fatal for the whole
// startup sequence.
func Provision(opts Options) (*Bundle, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("certs: output directory is required")
	}
	hosts := opts.Hosts
	if len(hosts) == 0 {
		hosts = []string{"localhost", "127.0.0.1", "::1"}
	}

	b := &Bundle{
		CAKey:      filepath.Join(opts.Dir, CAKeyFile),
		ServerKey:  filepath.Join(opts.Dir, ServerKeyFile),
		ServerCert: filepath.Join(opts.Dir, ServerCertFile),
	}

	// Wholesale regeneration: drop any previous bundle first so stale
	// key/cert pairings can never survive a partial run.
	for _, p := range []string{b.CAKey, b.ServerKey, b.ServerCert} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("certs: removing %s: %w", p, err)
		}
	}

	caKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, fmt.Errorf("certs: generating CA key: %w", err)
	}
	serverKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, fmt.Errorf("certs: generating server key: %w", err)
	}

	certDER, err := signServerCert(caKey, serverKey, hosts)
	if err != nil {
		return nil, err
	}

	if err := writeKey(b.CAKey, caKey); err != nil {
		return nil, err
	}
	if err := writeKey(b.ServerKey, serverKey); err != nil {
		return nil, err
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	if err := os.WriteFile(b.ServerCert, certPEM, 0o644); err != nil {
		return nil, fmt.Errorf("certs: writing %s: %w", b.ServerCert, err)
	}

	if err := chownBundle(b, opts.OwnerUID); err != nil {
		return nil, err
	}

	return b, nil
}

// signServerCert issues a server certificate for the given hosts, signed by
// the CA key.
func signServerCert(caKey, serverKey *rsa.PrivateKey, hosts []string) ([]byte, error) {
	now := time.Now()

	caSerial, err := randomSerial()
	if err != nil {
		return nil, err
	}
	caTemplate := &x509.Certificate{
		SerialNumber:          caSerial,
		Subject:               pkix.Name{CommonName: "devstack local CA"},
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(validity),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}

	serial, err := randomSerial()
	if err != nil {
		return nil, err
	}
	template := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    now.Add(-time.Hour),
		NotAfter:     now.Add(validity),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, template, caTemplate, &serverKey.PublicKey, caKey)
	if err != nil {
		return nil, fmt.Errorf("certs: signing server certificate: %w", err)
	}
	return der, nil
}

func randomSerial() (*big.Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	serial, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, fmt.Errorf("certs: generating serial number: %w", err)
	}
	return serial, nil
}

// writeKey writes an unencrypted PKCS#1 private key with 0600 permissions.
func writeKey(path string, key *rsa.PrivateKey) error {
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return fmt.Errorf("certs: writing %s: %w", path, err)
	}
	// WriteFile leaves existing modes alone; force the restrictive bits.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("certs: chmod %s: %w", path, err)
	}
	return nil
}

// chownBundle hands the bundle to the container's runtime UID. Only Linux
// hosts share bind mounts with real file ownership; Docker Desktop on macOS
// and Windows remaps ownership itself, so the chown is skipped there. This
// platform split is intentional.
func chownBundle(b *Bundle, uid int) error {
	if uid < 0 || runtime.GOOS != "linux" {
		return nil
	}
	for _, p := range []string{b.CAKey, b.ServerKey, b.ServerCert} {
		if err := os.Chown(p, uid, -1); err != nil {
			return fmt.Errorf("certs: chown %s to uid %d: %w", p, uid, err)
		}
	}
	return nil
}
