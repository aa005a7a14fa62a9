/*
Package extractor turns application configuration files into shortcut
records.

# Overview

Each extractor is a pure function of one file's contents: the same file
always yields the same records. Formats covered:

  - Keybindings: list-of-bindings JSON (editor keybindings.json, JSONC
    tolerated)
  - CommandMap: command-map JSON (browser extension-style preferences)
  - KeyEquivalents: NSUserKeyEquivalents / keyEquivalents property lists
  - Keymap: structured keymap lists (.sublime-keymap, keymap.json)
  - TerminalKeys: modifier-flagged property lists (terminal preferences)

# Error policy

Extraction never raises to the caller. A missing, unreadable, or malformed
file degrades to a nil record list plus a warning on the diagnostic stream
naming the offending path, so the orchestrator can keep processing the
remaining sources.

# Dispatch

The Registry maps file-suffix patterns to extractors, checked in
registration order against the lower-cased base name. Default() wires the
known formats; keymap-suffixed names are registered before the generic
.json entry so they win the match. New formats are added by registering a
suffix, not by editing a dispatch switch.

# Normalization

All extractors emit the canonical combination form ("Command+Shift+N"):
modifier spellings (cmd, super, ctrl, alt, ...) and Apple key-equivalent
glyphs (@, ^, ~, $) are translated, single-character keys upper-cased.
*/
package extractor
