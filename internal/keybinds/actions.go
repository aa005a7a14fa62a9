package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal Context = "global" // Available everywhere
	ContextNormal Context = "normal" // Browsing the shortcut list
	ContextSearch Context = "search" // Search input mode
	ContextHelp   Context = "help"   // Help viewer
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp     Action = "navigate_up"       // Move up one item
	ActionNavigateDown   Action = "navigate_down"     // Move down one item
	ActionPageUp         Action = "page_up"           // Move up one page
	ActionPageDown       Action = "page_down"         // Move down one page
	ActionHalfPageUp     Action = "half_page_up"      // Move up half page (ctrl+u)
	ActionHalfPageDown   Action = "half_page_down"    // Move down half page (ctrl+d)
	ActionGoToTop        Action = "go_to_top"         // Go to top
	ActionGoToBottom     Action = "go_to_bottom"      // Go to bottom
	ActionGoToTopPrepare Action = "go_to_top_prepare" // First 'g' in 'gg' sequence

	// Shortcut list actions
	ActionCopyToClipboard Action = "copy_to_clipboard" // Copy selected shortcut
	ActionExport          Action = "export"            // Write shortcuts-export.json
	ActionRefresh         Action = "refresh"           // Re-run the collection pass
	ActionOpenSearch      Action = "open_search"       // Open search input
	ActionOpenHelp        Action = "open_help"         // Open help viewer

	// Search input actions
	ActionSearchSubmit Action = "search_submit" // Confirm search query
	ActionSearchCancel Action = "search_cancel" // Discard search query

	// Overlay actions
	ActionClose Action = "close" // Close current overlay

	// Other actions
	ActionNoOp Action = "noop" // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	infos := map[Action]ActionInfo{
		ActionQuit:            {ActionQuit, "Quit application", "Global"},
		ActionQuitForce:       {ActionQuitForce, "Force quit", "Global"},
		ActionNavigateUp:      {ActionNavigateUp, "Move up", "Navigation"},
		ActionNavigateDown:    {ActionNavigateDown, "Move down", "Navigation"},
		ActionPageUp:          {ActionPageUp, "Page up", "Navigation"},
		ActionPageDown:        {ActionPageDown, "Page down", "Navigation"},
		ActionHalfPageUp:      {ActionHalfPageUp, "Half page up", "Navigation"},
		ActionHalfPageDown:    {ActionHalfPageDown, "Half page down", "Navigation"},
		ActionGoToTop:         {ActionGoToTop, "Go to top", "Navigation"},
		ActionGoToBottom:      {ActionGoToBottom, "Go to bottom", "Navigation"},
		ActionCopyToClipboard: {ActionCopyToClipboard, "Copy shortcut to clipboard", "Shortcuts"},
		ActionExport:          {ActionExport, "Export shortcuts to JSON", "Shortcuts"},
		ActionRefresh:         {ActionRefresh, "Refresh shortcut list", "Shortcuts"},
		ActionOpenSearch:      {ActionOpenSearch, "Search shortcuts", "Shortcuts"},
		ActionOpenHelp:        {ActionOpenHelp, "Open help", "Information"},
		ActionClose:           {ActionClose, "Close", "Overlay"},
	}

	if info, ok := infos[action]; ok {
		return info
	}

	return ActionInfo{action, string(action), "Unknown"}
}

// IsGlobalAction returns true if the action is available in all contexts
func IsGlobalAction(action Action) bool {
	globalActions := map[Action]bool{
		ActionQuit:      true,
		ActionQuitForce: true,
	}
	return globalActions[action]
}
