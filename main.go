// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/lean-docgen/docgen-action/cmd/docgen"

func main() {
	cmd.Execute()
}
