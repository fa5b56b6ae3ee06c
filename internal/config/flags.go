package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses configuration flags from args on a private flag set, so
// it can be called more than once (tests, client and server binaries).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-r catalog root directory
//	-collection catalog collection name (listing route and JSON key)
//	-id-field JSON key of the item id in listing entries
//	-public static files directory
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-server-url catalog server base URL used by the client
//	-log-level zerolog level name
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var catalogRoot, collection, idField, publicDir string
	var serverURL, logLevel, jsonConfigPath string
	var shutdownTimeout time.Duration

	fs := flag.NewFlagSet("bestreads", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&catalogRoot, "r", "", "Catalog root directory")
	fs.StringVar(&collection, "collection", "", "Catalog collection name")
	fs.StringVar(&idField, "id-field", "", "JSON key of the item id in listings")
	fs.StringVar(&publicDir, "public", "", "Static files directory")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&serverURL, "server-url", "", "Catalog server base URL")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Catalog: Catalog{
			Root:       catalogRoot,
			Collection: collection,
			IDField:    idField,
			PublicDir:  publicDir,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: serverURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string if neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; otherwise the host must be "localhost"
// or a valid IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
