package keybinds

import "testing"

func TestMatchFallsBackToGlobal(t *testing.T) {
	r := NewDefaultRegistry()

	action, ok := r.Match(ContextHelp, "ctrl+c")
	if !ok {
		t.Fatal("expected global ctrl+c to match in help context")
	}
	if action != ActionQuitForce {
		t.Errorf("expected %s, got %s", ActionQuitForce, action)
	}
}

func TestMatchContextOverridesGlobal(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextGlobal, "x", ActionNoOp)
	r.Register(ContextNormal, "x", ActionRefresh)

	action, ok := r.Match(ContextNormal, "x")
	if !ok || action != ActionRefresh {
		t.Errorf("expected context binding to win, got %s (ok=%v)", action, ok)
	}
}

func TestMatchUnbound(t *testing.T) {
	r := NewDefaultRegistry()

	if _, ok := r.Match(ContextNormal, "ctrl+alt+del"); ok {
		t.Error("expected no match for unbound key")
	}
}

func TestMatchMultiKeySequence(t *testing.T) {
	r := NewDefaultRegistry()

	// First 'g' is a partial match
	_, complete, partial := r.MatchMultiKey(ContextNormal, "g")
	if complete || !partial {
		t.Fatalf("first g: complete=%v partial=%v, want partial only", complete, partial)
	}

	// Second 'g' completes the sequence
	action, complete, partial := r.MatchMultiKey(ContextNormal, "g")
	if !complete || partial {
		t.Fatalf("second g: complete=%v partial=%v, want complete", complete, partial)
	}
	if action != ActionGoToTop {
		t.Errorf("expected %s, got %s", ActionGoToTop, action)
	}
}

func TestMatchMultiKeyAbandonedSequence(t *testing.T) {
	r := NewDefaultRegistry()

	r.MatchMultiKey(ContextNormal, "g")
	if _, complete, _ := r.MatchMultiKey(ContextNormal, "z"); complete {
		t.Error("gz should not complete any sequence")
	}

	// State is cleared, a plain key matches again
	action, complete, _ := r.MatchMultiKey(ContextNormal, "q")
	if !complete || action != ActionQuit {
		t.Errorf("expected quit after abandoned sequence, got %s (complete=%v)", action, complete)
	}
}

func TestGetBindingString(t *testing.T) {
	r := NewDefaultRegistry()

	got := r.GetBindingString(ContextNormal, ActionCopyToClipboard)
	if got != "c" {
		t.Errorf("expected 'c', got %q", got)
	}

	if r.GetBindingString(ContextNormal, Action("nonexistent")) != "unbound" {
		t.Error("expected 'unbound' for unknown action")
	}
}

func TestListBindingsIncludesGlobal(t *testing.T) {
	r := NewDefaultRegistry()

	found := false
	for _, b := range r.ListBindings(ContextNormal) {
		if b.Key == "ctrl+c" && b.Context == ContextGlobal {
			found = true
		}
	}
	if !found {
		t.Error("expected global ctrl+c in normal context listing")
	}
}
