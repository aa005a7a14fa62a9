/*
Package tui is the interactive shortcut browser.

It renders the merged shortcut list in a scrollable table, with the
frontmost application's rows highlighted. From the list the user can
search (substring match over shortcut, context, and description), copy
the selected shortcut to the clipboard, export the full list to
shortcuts-export.json, and re-run the collection pass without leaving
the browser.

Keybindings come from the keybinds registry, so everything here is
remappable through ~/.keycli/keybinds.json. The help overlay is built
from the live registry and therefore reflects user overrides.
*/
package tui
