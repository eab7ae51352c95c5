package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// fileList is a repeatable flag value; each occurrence may also hold a
// comma-separated list.
type fileList []string

func (f *fileList) String() string {
	return strings.Join(*f, ",")
}

func (f *fileList) Set(s string) error {
	for _, path := range strings.Split(s, ",") {
		if path = strings.TrimSpace(path); path != "" {
			*f = append(*f, path)
		}
	}
	return nil
}

// parseFlags parses the command line arguments (without the program name).
//
// Flags:
//
//	-a inspection server address in format [host]:[port]
//	-c/-config config file path, repeatable
//	-namespace service key namespace
//	-root-key config file root key
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-probe service key of a client to call once
//	-probe-path path requested by -probe
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var configFiles fileList
	var namespace string
	var rootKey string
	var logLevel string
	var requestTimeout time.Duration
	var probeKey string
	var probePath string

	fs := flag.NewFlagSet("sdkctl", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&configFiles, "c", "Config file path (YAML or JSON), repeatable")
	fs.Var(&configFiles, "config", "Config file path (alias)")
	fs.StringVar(&namespace, "namespace", "", "Service key namespace")
	fs.StringVar(&rootKey, "root-key", "", "Config file root key")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&probeKey, "probe", "", "Service key of a client to call once")
	fs.StringVar(&probePath, "probe-path", "", "Path requested by -probe")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Namespace: namespace,
			RootKey:   rootKey,
			LogLevel:  logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Probe: Probe{
			ServiceKey: probeKey,
			Path:       probePath,
		},
		ConfigFilePaths: configFiles,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
