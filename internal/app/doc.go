// Package app contains the demo application logic. It defines the App
// struct, its configuration, and the rendering of parsed options, decoupled
// from the command-line entrypoint.
package app
