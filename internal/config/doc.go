// Package config provides user configuration management for itemctl.
//
// Settings live in a YAML file stored in the platform configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/itemctl/config.yaml or $HOME/.config/itemctl/config.yaml
//   - macOS: $HOME/.config/itemctl/config.yaml
//   - Windows: %LOCALAPPDATA%\itemctl\config.yaml
//
// A missing file is not an error; defaults are used. Values are resolved in
// this order, highest first: command-line flags, environment variables
// (ITEMCTL_ORIGIN, ITEMCTL_TIMEOUT, ITEMCTL_LOG_LEVEL), the file, defaults.
//
// # Usage Example
//
//	settings, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
//	    return err
//	}
//	client, err := items.NewClient(settings.Server.Origin)
package config
