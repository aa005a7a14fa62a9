/*
Package keybinds manages the interactive browser's keybindings.

Bindings are organized by context (global, normal, search, help). Each
context maps raw key strings (as bubbletea reports them) to named
actions. A lookup first checks the active context, then falls back to
the global context, so ctrl+c always quits no matter what overlay is
showing.

Defaults live in defaults.go. Users can override any of them by
dropping a keybinds.json into ~/.keycli; LoadOrDefault layers that file
over the defaults and the validator flags rebound reserved keys and
shadowed globals before the registry is handed to the browser.

The registry also understands the two-key 'gg' sequence for jumping to
the top of the list, tracked per context so a stray 'g' in one overlay
never leaks into another.
*/
package keybinds
