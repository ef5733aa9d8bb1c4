// Package datasets provides DatasetManager implementations, resolving
// dataset names to the event files which make them up.
package datasets
