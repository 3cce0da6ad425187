// Copyright 2026 Simplia
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/andremelo97/simplia-paas-sub002/cmd"
)

func main() {
	cmd.Execute()
}
