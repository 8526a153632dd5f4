package progress

import "testing"

// TestDiscardSubtreeIsAllDiscard exercises invariant 5: a Progress tree
// rooted at Discard must stay Discard no matter how deep AddChild is
// chained, and every call on it must be safe and side-effect free.
func TestDiscardSubtreeIsAllDiscard(t *testing.T) {
	var p Progress = Discard{}
	for i := 0; i < 4; i++ {
		p = p.AddChild("child")
	}
	if _, ok := p.(Discard); !ok {
		t.Fatalf("expected Discard after repeated AddChild, got %T", p)
	}
	p.SetStep(1)
	p.Inc()
	p.IncBy(5)
	p.Message(Info, "hello")
	p.Done("done")
	if p.Name() != "" {
		t.Fatalf("Discard.Name() = %q, want empty", p.Name())
	}
}

func TestDoOrDiscardWithNilInnerBehavesLikeDiscard(t *testing.T) {
	var d DoOrDiscard
	child := d.AddChild("child")
	if _, ok := child.(Discard); !ok {
		t.Fatalf("expected nil-inner DoOrDiscard.AddChild to return Discard, got %T", child)
	}
	d.SetStep(1)
	if d.Name() != "" {
		t.Fatalf("Name() = %q, want empty", d.Name())
	}
}

func TestDoOrDiscardForwardsToInner(t *testing.T) {
	recorder := &recordingProgress{}
	d := WrapOption(recorder)
	d.SetName("renamed")
	d.Inc()
	if recorder.name != "renamed" {
		t.Fatalf("name = %q, want %q", recorder.name, "renamed")
	}
	if recorder.incCalls != 1 {
		t.Fatalf("incCalls = %d, want 1", recorder.incCalls)
	}
}
