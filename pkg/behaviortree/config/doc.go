/*
Package config loads settings for ticking behaviour trees.

# Overview

Settings describe how a tree is run, not what it contains: its name, log
level, whether OpenTelemetry metrics and tracing are on, and where tick
history is kept. Tree shape is always built in Go code.

# File Loading

Load settings from YAML or JSON files, detected by extension:

	s, err := config.FromFile("patrol.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	// Or load from bytes
	s, err = config.FromYAML(yamlBytes)
	s, err = config.FromJSON(jsonBytes)

A YAML file looks like:

	name: patrol
	log_level: debug
	metrics: true
	tracing: false
	history:
	  driver: sqlite
	  path: ./ticks.db

Keys that are absent keep their Default() values. Loaded settings are
validated before they are returned.
*/
package config
