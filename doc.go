// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

/*
Package classmerge joins CSS class inputs and resolves Tailwind CSS utility conflicts.

The package works in two steps:
  - flatten inputs (strings, numbers, conditional maps, slices, JSON, templ values) into tokens (`Flatten`)
  - drop tokens overridden by a later token of the same conflict group (`Resolve`)

`CN` does both with the default table and joins survivors with single spaces:

	CN("px-2 py-1", "px-3")         // "py-1 px-3"
	CN("p-4 px-2", "p-3")           // "p-3"
	CN("p-4 px-2", "px-3")          // "p-4 px-3"
	CN("sm:px-2", "sm:px-3", "px-1") // "sm:px-3 px-1"

Classes without a known group are never dropped.

For project-specific utilities, build a `Merger`:
  - extend the table with groups and conflicts (`MergerOptions`)
  - or load them from YAML files (`LoadConfigFile`, `NewMergerFromFiles`)
  - set a utility prefix and variant separator when the project uses them

Mergers and the default table are immutable and safe for concurrent use.
*/
package classmerge
