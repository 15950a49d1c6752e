// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/mcp-snowflake-server/internal/config"
	"github.com/snowflakedb/gosnowflake"
)

var authenticators = map[string]gosnowflake.AuthType{
	"snowflake":             gosnowflake.AuthTypeSnowflake,
	"externalbrowser":       gosnowflake.AuthTypeExternalBrowser,
	"oauth":                 gosnowflake.AuthTypeOAuth,
	"snowflake_jwt":         gosnowflake.AuthTypeJwt,
	"username_password_mfa": gosnowflake.AuthTypeUsernamePasswordMFA,
}

// newSnowflakeConfig maps connection parameters onto gosnowflake.Config.
// Parameters without a dedicated field are passed as session parameters.
func newSnowflakeConfig(params config.ConnectionConfig) (*gosnowflake.Config, error) {
	cfg := &gosnowflake.Config{Params: make(map[string]*string)}

	for _, key := range params.Keys() {
		value, ok := params.String(key)
		if !ok {
			continue
		}
		if err := applyParameter(cfg, key, value); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConnectionConfig, key, err)
		}
	}

	if path, ok := params.String("private_key_file"); ok {
		passphrase, _ := params.String("private_key_file_pwd")
		key, err := loadPrivateKey(path, passphrase)
		if err != nil {
			return nil, err
		}
		cfg.PrivateKey = key
		cfg.Authenticator = gosnowflake.AuthTypeJwt
	}

	return cfg, nil
}

func applyParameter(cfg *gosnowflake.Config, key, value string) error {
	switch key {
	case "account":
		cfg.Account = value
	case "user":
		cfg.User = value
	case "password":
		cfg.Password = value
	case "database":
		cfg.Database = value
	case "schema":
		cfg.Schema = value
	case "warehouse":
		cfg.Warehouse = value
	case "role":
		cfg.Role = value
	case "region":
		cfg.Region = value
	case "host":
		cfg.Host = value
	case "protocol":
		cfg.Protocol = value
	case "application":
		cfg.Application = value
	case "token":
		cfg.Token = value
	case "passcode":
		cfg.Passcode = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Port = port
	case "passcode_in_password":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		cfg.PasscodeInPassword = b
	case "login_timeout":
		d, err := parseSeconds(value)
		if err != nil {
			return err
		}
		cfg.LoginTimeout = d
	case "request_timeout":
		d, err := parseSeconds(value)
		if err != nil {
			return err
		}
		cfg.RequestTimeout = d
	case "authenticator":
		return applyAuthenticator(cfg, value)
	case "okta_url":
		u, err := url.Parse(value)
		if err != nil {
			return err
		}
		cfg.OktaURL = u
		cfg.Authenticator = gosnowflake.AuthTypeOkta
	case "private_key_file", "private_key_file_pwd":
		// handled by newSnowflakeConfig
	default:
		v := value
		cfg.Params[key] = &v
	}

	return nil
}

func applyAuthenticator(cfg *gosnowflake.Config, value string) error {
	if auth, ok := authenticators[strings.ToLower(value)]; ok {
		cfg.Authenticator = auth
		return nil
	}

	// Okta is selected by passing its URL as the authenticator.
	u, err := url.Parse(value)
	if err != nil || u.Scheme != "https" {
		return fmt.Errorf("unknown authenticator %q", value)
	}
	cfg.OktaURL = u
	cfg.Authenticator = gosnowflake.AuthTypeOkta

	return nil
}

// parseSeconds accepts a plain number of seconds or a Go duration string.
func parseSeconds(value string) (time.Duration, error) {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return time.Duration(n * float64(time.Second)), nil
	}
	return time.ParseDuration(value)
}

func loadPrivateKey(path, passphrase string) (*rsa.PrivateKey, error) {
	if passphrase != "" {
		return nil, fmt.Errorf("%w: encrypted private keys are not supported, decrypt %s first", ErrReadingPrivateKey, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingPrivateKey, err)
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("%w: %s is not PEM encoded", ErrReadingPrivateKey, path)
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingPrivateKey, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not hold an RSA key", ErrReadingPrivateKey, path)
	}

	return key, nil
}
