/*
Package types defines the core data structure shared across keycli.

# Overview

ShortcutRecord is the only domain entity: one key combination bound to one
description within one context. Every collection source — the static system
table, the symbolic-hotkeys preferences, the accessibility walker, the
format extractors, and the user's shortcuts.json — normalizes its output
into this shape.

# Identity

The pair (shortcut, context) forms the identity key used by the merge
engine for deduplication. Priority is only consulted to break conflicts
between records with equal identity: the currently focused application's
records carry PriorityFocused, everything else PriorityDefault.

# Example

	{
	  "shortcut": "Command+Shift+N",
	  "description": "New Incognito Window",
	  "context": "Google Chrome",
	  "priority": 2
	}

# Immutability

Records are immutable once produced. The merge engine selects and reorders;
it never rewrites a field.
*/
package types
