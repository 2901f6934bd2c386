// Package client implements the interactive client application runtime.
//
// It wires configuration, the local store, the account service, the fragment
// router, and the terminal UI into a single process lifecycle.
package client
