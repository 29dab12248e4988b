// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main_test

import (
	"os"
	"testing"

	"fortio.org/testscript"
	main "github.com/absolutelightning/go-radix-trie/cmd/radixtrie"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"radixtrie": main.Main,
	}))
}

func TestRadixtrieCli(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "testdata"})
}
