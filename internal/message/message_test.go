package message

import "testing"

func TestMatchQuit(t *testing.T) {
	got := Match[string](Quit{},
		func() string { return "quit" },
		func(x, y int32) string {
			t.Error("Move handler should not run for Quit")
			return ""
		},
	)

	if got != "quit" {
		t.Errorf("expected 'quit', got %q", got)
	}
}

func TestMatchMoveBindsFields(t *testing.T) {
	var gotX, gotY int32

	Match[struct{}](Move{X: 2, Y: 3},
		func() struct{} {
			t.Error("Quit handler should not run for Move")
			return struct{}{}
		},
		func(x, y int32) struct{} {
			gotX, gotY = x, y
			return struct{}{}
		},
	)

	if gotX != 2 || gotY != 3 {
		t.Errorf("bound (%d, %d), want (2, 3)", gotX, gotY)
	}
}

func TestMatchVoid(t *testing.T) {
	var quitRan, moveRan bool

	MatchVoid(Quit{},
		func() { quitRan = true },
		func(x, y int32) { moveRan = true },
	)

	if !quitRan || moveRan {
		t.Errorf("quitRan = %v, moveRan = %v; want true, false", quitRan, moveRan)
	}
}

func TestMatchNilHandlerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nil handler should panic")
		}
	}()

	Match[int](Quit{}, nil, func(x, y int32) int { return 0 })
}

func TestVariantStrings(t *testing.T) {
	if got := (Quit{}).String(); got != "Quit" {
		t.Errorf("expected 'Quit', got %q", got)
	}

	if got := (Move{X: 2, Y: 3}).String(); got != "Move(2, 3)" {
		t.Errorf("expected 'Move(2, 3)', got %q", got)
	}
}
