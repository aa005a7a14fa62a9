/*
Package collector orchestrates the collection pass.

# Sources

One run concatenates, in fixed order:

 1. The static system shortcut table
 2. The stored global hotkey preferences (symbolic hotkeys plist)
 3. The live menu walk over every visible process, with records of the
    frontmost application tagged with the elevated priority
 4. The well-known per-application configuration files
 5. The user's shortcuts.json (custom entries plus its apps map)

# Failure model

Nothing here is fatal. Missing well-known files are skipped silently;
unreadable or malformed sources degrade to empty contributions with a
warning on the diagnostic stream; a process that cannot be introspected
contributes zero records. The pass is a single synchronous loop — no
goroutines, no cancellation, one accumulating slice.

The raw concatenation is handed to the merge package for deduplication
and ordering.
*/
package collector
