// Package logger is the public API of sinklog. Most users only need to
// import this package.
//
// A Logger fans every call out to an ordered list of sinks: a console sink
// that exists from the moment Build returns, and a remote sink that is
// added in the background once the process identity has been resolved and
// the transport is up. Each sink filters on its own enable flag and
// threshold, so a single call may reach the console, the remote ingestion
// service, both, or neither.
//
//	log := logger.NewBuilder().
//	    WithToken(env.Token).
//	    WithOverrides(env.Overrides).
//	    WithIdentityProvider(identity.Host("com.example.app", "1.0.0")).
//	    Build()
//	defer log.Close()
//
//	log.Info("user %s logged in", name)
//	log.Warn("retrying", attempt, "of", max)
//
// Level methods accept either a printf format followed by its arguments or
// any values, which are joined with single spaces. They never panic and
// never return errors: logging must not disturb the caller.
//
// Scoped loggers are obtained with Child and cached by name. They share
// the root's sinks, so they observe the remote sink as soon as the root
// does and carry no configuration of their own.
package logger
