/*
Package ax walks live application menu bars through the macOS
accessibility tree.

# Overview

Every running application exposes its UI hierarchy for assistive access.
Menu items carry an accelerator character (AXMenuItemCmdChar) and a
modifier bitmask (AXMenuItemCmdModifiers); WalkApp traverses one
application's tree depth-first from its menu bar and emits a shortcut
record per item with a non-empty accelerator.

# Contracts

Element and Provider are capability interfaces. The darwin adapter backs
them with the AX C API via cgo; every other build gets a stub whose
NewProvider returns ErrUnsupported. The walker itself is pure logic over
Element and is tested with fakes.

# Failure policy

Introspection is racy by nature: applications exit mid-walk, permission
can be revoked, attributes come and go. Every attribute read is treated as
a may-fail branch — a failing element or subtree contributes nothing and
the walk continues. A process that cannot be introspected at all is
skipped entirely.
*/
package ax
