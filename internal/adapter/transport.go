package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/go-web-api-sdk/models"
	"github.com/go-resty/resty/v2"
)

// defaultMaxRedirects is used when allow_redirects is enabled without an
// explicit max.
const defaultMaxRedirects = 5

// applyTransport configures c from the shared transport options. Recognized
// options are applied; every other option is left for wrapping clients and
// ignored here.
func applyTransport(c *resty.Client, transport models.TransportConfig) error {
	tlsConfig, err := buildTLSConfig(transport)
	if err != nil {
		return err
	}

	dialer := &net.Dialer{
		Timeout:   seconds(transport.Float(models.TransportConnectTimeout, 0)),
		KeepAlive: 30 * time.Second,
	}

	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	httpTransport.DialContext = dialer.DialContext
	httpTransport.DisableCompression = !transport.Bool(models.TransportDecodeContent, true)
	httpTransport.TLSClientConfig = tlsConfig

	c.SetTransport(httpTransport).
		SetTimeout(seconds(transport.Float(models.TransportTimeout, 0))).
		SetRedirectPolicy(redirectPolicy(transport)).
		SetDebug(transport.Bool(models.TransportDebug, false)).
		SetDoNotParseResponse(transport.Bool(models.TransportStream, false))

	if headers := transport.Headers(); len(headers) > 0 {
		c.SetHeaders(headers)
	}

	// resty keeps a cookie jar by default
	if !transport.Bool(models.TransportCookies, false) {
		c.SetCookieJar(nil)
	}

	return nil
}

// buildTLSConfig handles verify (bool, or a CA bundle path) and the cert /
// ssl_key client certificate pair.
func buildTLSConfig(transport models.TransportConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if caBundle := transport.String(models.TransportVerify); caBundle != "" && !isBoolString(caBundle) {
		pem, err := os.ReadFile(caBundle)
		if err != nil {
			return nil, fmt.Errorf("%w: verify: %w", ErrInvalidTransport, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("%w: verify: no certificates found in %s", ErrInvalidTransport, caBundle)
		}
		tlsConfig.RootCAs = pool
	} else {
		tlsConfig.InsecureSkipVerify = !transport.Bool(models.TransportVerify, true)
	}

	certFile := pathOption(transport[models.TransportCert])
	if certFile == "" {
		return tlsConfig, nil
	}

	keyFile := pathOption(transport[models.TransportSSLKey])
	if keyFile == "" {
		// a single PEM holding both certificate and key
		keyFile = certFile
	}

	pair, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: cert: %w", ErrInvalidTransport, err)
	}
	tlsConfig.Certificates = []tls.Certificate{pair}

	return tlsConfig, nil
}

// redirectPolicy maps allow_redirects: false stops at the first redirect and
// returns the 3xx response, true follows up to five, and a mapping may set
// "max".
func redirectPolicy(transport models.TransportConfig) resty.RedirectPolicy {
	if options, ok := transport[models.TransportAllowRedirects].(map[string]any); ok {
		maxRedirects := int(models.TransportConfig(options).Float("max", defaultMaxRedirects))
		return resty.FlexibleRedirectPolicy(maxRedirects)
	}

	if !transport.Bool(models.TransportAllowRedirects, true) {
		return resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})
	}

	return resty.FlexibleRedirectPolicy(defaultMaxRedirects)
}

// pathOption accepts a path string or a [path, passphrase] pair. Encrypted
// keys are not supported, so the passphrase is ignored.
func pathOption(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case []any:
		if len(value) > 0 {
			if path, ok := value[0].(string); ok {
				return path
			}
		}
	}
	return ""
}

func isBoolString(s string) bool {
	switch s {
	case "true", "false", "1", "0":
		return true
	default:
		return false
	}
}

func seconds(v float64) time.Duration {
	if v <= 0 {
		return 0
	}
	return time.Duration(v * float64(time.Second))
}
