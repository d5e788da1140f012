// Package step holds the pieces of the CI step workflow around an
// injection run: the addons configuration file carrying the collector
// token, lookups of the step's environment and the Gradle wrapper runner
// used for the verification task.
package step
