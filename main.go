// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/seniorhub/household-service/cmd"

func main() {
	cmd.Execute()
}
