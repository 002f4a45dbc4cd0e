// Package output writes generated binding files to disk.
package output
