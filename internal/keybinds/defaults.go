package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalModeBindings(r)
	registerSearchBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNormalModeBindings sets up keybindings for browsing the list
func registerNormalModeBindings(r *Registry) {
	// Quit
	r.Register(ContextNormal, "q", ActionQuit)

	// Navigation
	r.RegisterMultiple(ContextNormal, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextNormal, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextNormal, "pgup", ActionPageUp)
	r.Register(ContextNormal, "pgdown", ActionPageDown)
	r.Register(ContextNormal, "ctrl+u", ActionHalfPageUp)
	r.Register(ContextNormal, "ctrl+d", ActionHalfPageDown)
	r.Register(ContextNormal, "home", ActionGoToTop)
	r.Register(ContextNormal, "end", ActionGoToBottom)
	r.Register(ContextNormal, "g", ActionGoToTopPrepare)
	r.Register(ContextNormal, "gg", ActionGoToTop)
	r.Register(ContextNormal, "G", ActionGoToBottom)

	// Shortcut operations
	r.Register(ContextNormal, "c", ActionCopyToClipboard)
	r.Register(ContextNormal, "e", ActionExport)
	r.Register(ContextNormal, "r", ActionRefresh)
	r.Register(ContextNormal, "/", ActionOpenSearch)
	r.Register(ContextNormal, "?", ActionOpenHelp)
}

// registerSearchBindings sets up keybindings for the search input
func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "enter", ActionSearchSubmit)
	r.Register(ContextSearch, "esc", ActionSearchCancel)
}

// registerHelpBindings sets up keybindings for the help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionClose)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
}
