// Package main shared CLI output helpers.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	labelColor   = color.New(color.FgCyan)
)

func success(format string, args ...interface{}) {
	successColor.Printf("✓ "+format+"\n", args...)
}

func fail(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
	os.Exit(1)
}

// exitOnError prints the error and exits; no-op on nil.
func exitOnError(err error) {
	if err != nil {
		fail("%v", err)
	}
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail("encoding output: %v", err)
	}
	fmt.Println(string(out))
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		fail("invalid id %q: expected a positive integer", arg)
	}
	return id
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func int64Ptr(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
