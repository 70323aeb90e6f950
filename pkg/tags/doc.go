// Package tags provides the default tag filter used to select which examples run.
package tags
