// Package natsutil builds NATS connection options from the daemon's
// security configuration.
package natsutil

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nats-io/nats.go"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

var (
	// ErrMTLSRequired is returned when mTLS security is required but not configured
	ErrMTLSRequired = errors.New("mtls security required")
	// ErrCAParsingFailed is returned when CA certificate cannot be parsed
	ErrCAParsingFailed = errors.New("failed to parse CA certificate")
)

// TLSConfig builds a tls.Config for connecting to NATS using mTLS.
func TLSConfig(sec *models.SecurityConfig) (*tls.Config, error) {
	if sec == nil || sec.Mode != "mtls" {
		return nil, ErrMTLSRequired
	}

	certFile := resolvePath(sec.CertDir, sec.TLS.CertFile)
	keyFile := resolvePath(sec.CertDir, sec.TLS.KeyFile)
	caFile := resolvePath(sec.CertDir, sec.TLS.CAFile)

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load client certificate: %w", err)
	}

	caCert, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caCert) {
		return nil, ErrCAParsingFailed
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caPool,
		ServerName:   sec.ServerName,
		MinVersion:   tls.VersionTLS13,
	}, nil
}

// ConnectOptions translates the security configuration into NATS connect
// options. A nil or non-mTLS configuration yields none and the client
// connects plain.
func ConnectOptions(sec *models.SecurityConfig) ([]nats.Option, error) {
	if sec == nil || sec.Mode != "mtls" {
		return nil, nil
	}

	tlsConf, err := TLSConfig(sec)
	if err != nil {
		return nil, err
	}

	return []nats.Option{nats.Secure(tlsConf)}, nil
}

// resolvePath anchors relative certificate paths at the configured
// certificate directory.
func resolvePath(certDir, path string) string {
	if path == "" || certDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(certDir, path)
}
