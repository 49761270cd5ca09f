// Package config loads the launcher configuration with koanf.
//
// Values are layered, lowest precedence first: built-in defaults, a YAML file
// (launchcore.yaml in the working directory or the launcher root, or an
// explicit path), LAUNCHCORE_* environment variables with "__" separating
// nested keys, and finally command-line flags that were explicitly set.
package config
