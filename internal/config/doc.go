// Package config loads and validates the dscpctl configuration file.
//
// The file is TOML, looked up at ~/.config/dscpctl/config.toml or
// ./dscpctl.toml unless an explicit path is given. Missing files are not an
// error; defaults apply. A commented sample is embedded for `dscpctl config
// init`.
package config
