// Package config loads the demo configuration with viper.
//
// Settings come from a YAML file (gosignal.yaml in . or ./configs when no
// path is given), then environment variables prefixed GOSIGNAL_ with dots
// replaced by underscores:
//
//	GOSIGNAL_DETECTION_CRITERIA=2.5 GOSIGNAL_WINDOW_OCCURRENCE=1 demo -config run.yaml
//
// Every key has a default; Load validates the result before returning it.
package config
