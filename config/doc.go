// Package config holds the sink configuration of a logger and the helpers
// that produce it.
//
// A Config starts from Defaults (console and publish enabled, both at the
// info threshold) and is adjusted by a flat override map with Merge. The
// merge is shallow: each recognized key replaces exactly one setting and
// every other setting keeps its default. Unrecognized keys and values that
// cannot be coerced are ignored.
//
// LoadEnvironment reads an env.json style file (plus the process
// environment) and returns the ingestion token together with the override
// map, so a host can do:
//
//	env, err := config.LoadEnvironment("env.json")
//	cfg := config.Merge(config.Defaults(), env.Overrides)
package config
