// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to the uppercased parameter name to form the
// environment variable probed for that parameter.
const EnvPrefix = "SNOWFLAKE_"

// connectionParameters is the catalog of connection parameters understood by
// the Snowflake client. It is never populated; its `env` tags are enumerated
// by [KnownParameters].
type connectionParameters struct {
	Account                        string `env:"ACCOUNT"`
	User                           string `env:"USER"`
	Password                       string `env:"PASSWORD"`
	Host                           string `env:"HOST"`
	Port                           string `env:"PORT"`
	Protocol                       string `env:"PROTOCOL"`
	Region                         string `env:"REGION"`
	Database                       string `env:"DATABASE"`
	Schema                         string `env:"SCHEMA"`
	Warehouse                      string `env:"WAREHOUSE"`
	Role                           string `env:"ROLE"`
	Authenticator                  string `env:"AUTHENTICATOR"`
	Token                          string `env:"TOKEN"`
	Passcode                       string `env:"PASSCODE"`
	PasscodeInPassword             string `env:"PASSCODE_IN_PASSWORD"`
	PrivateKeyFile                 string `env:"PRIVATE_KEY_FILE"`
	PrivateKeyFilePwd              string `env:"PRIVATE_KEY_FILE_PWD"`
	OktaURL                        string `env:"OKTA_URL"`
	Application                    string `env:"APPLICATION"`
	LoginTimeout                   string `env:"LOGIN_TIMEOUT"`
	RequestTimeout                 string `env:"REQUEST_TIMEOUT"`
	NetworkTimeout                 string `env:"NETWORK_TIMEOUT"`
	ClientSessionKeepAlive         string `env:"CLIENT_SESSION_KEEP_ALIVE"`
	ClientStoreTemporaryCredential string `env:"CLIENT_STORE_TEMPORARY_CREDENTIAL"`
	ClientRequestMFAToken          string `env:"CLIENT_REQUEST_MFA_TOKEN"`
	ValidateDefaultParameters      string `env:"VALIDATE_DEFAULT_PARAMETERS"`
	InsecureMode                   string `env:"INSECURE_MODE"`
	OCSPFailOpen                   string `env:"OCSP_FAIL_OPEN"`
	DisableQueryContextCache       string `env:"DISABLE_QUERY_CONTEXT_CACHE"`
	TmpDirPath                     string `env:"TMP_DIR_PATH"`
	Timezone                       string `env:"TIMEZONE"`
}

// secretParameters are masked by [ConnectionConfig.Redacted].
var secretParameters = []string{"password", "token", "passcode", "private_key_file_pwd"}

// KnownParameters returns the lowercase names of all recognized connection
// parameters in declaration order.
func KnownParameters() []string {
	params, err := env.GetFieldParams(&connectionParameters{})
	if err != nil {
		// the catalog is a static struct; a failure here is a programming error
		panic(err)
	}

	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, strings.ToLower(p.OwnKey))
	}

	return names
}

// EnvVarName returns the environment variable probed for parameter name.
func EnvVarName(name string) string {
	return EnvPrefix + strings.ToUpper(name)
}

// CollectEnvironment probes EnvVarName(name) in environ for every name in
// known. A parameter is included only if its variable is set; no defaults are
// synthesized. Set variables with an empty value are included as "".
func CollectEnvironment(known []string, environ map[string]string) ConnectionConfig {
	cfg := make(ConnectionConfig)
	for _, name := range known {
		if v, ok := environ[EnvVarName(name)]; ok {
			cfg[name] = v
		}
	}

	return cfg
}

// EnvironmentSource collects the known parameters from the process environment.
func EnvironmentSource() ConnectionConfig {
	return CollectEnvironment(KnownParameters(), env.ToMap(os.Environ()))
}
