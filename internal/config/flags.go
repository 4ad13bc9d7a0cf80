// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
	set  bool
}

// Flags holds the values of all configuration flags registered on a flag
// set. Values are read after the flag set has been parsed.
type Flags struct {
	generateURL    string
	requestTimeout time.Duration
	linkAddress    NetAddress
	downloadDir    string
	configPath     string
}

// RegisterFlags registers all configuration flags on fs and returns the
// holder their values are parsed into.
//
// Flags:
//
//	-u/--generate-url generator endpoint URL
//	-t/--request-timeout outbound request timeout (e.g. "30s", "1m"), 0 = none
//	-a/--link-address local link server address in format [host]:[port]
//	-o/--download-dir directory for downloaded bundles
//	-c/--config JSON or TOML file path with configs
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.generateURL, "generate-url", "u", "", "Generator endpoint URL")
	fs.DurationVarP(&f.requestTimeout, "request-timeout", "t", 0, "Request timeout (e.g., 30s, 1m)")
	fs.VarP(&f.linkAddress, "link-address", "a", "Link server address host:port")
	fs.StringVarP(&f.downloadDir, "download-dir", "o", "", "Directory for downloaded bundles")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or TOML config file path")

	return f
}

func (f *Flags) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DownloadDir: f.downloadDir,
		},
		Adapter: Adapter{
			GenerateURL:    f.generateURL,
			RequestTimeout: f.requestTimeout,
		},
		LinkServer: LinkServer{
			Address: f.linkAddress.String(),
		},
		ConfigFilePath: f.configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If the address was never set, it returns an empty string.
func (a *NetAddress) String() string {
	if !a.set && a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// Port 0 is accepted and means "any free port". The host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 0 || port > 65535 {
		return errors.New("port number must be in range 0-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	a.set = true
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
