package core

import "testing"

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, Up, true},
		{ActionRight, Right, true},
		{ActionDown, Down, true},
		{ActionLeft, Left, true},
		{ActionPause, 0, false},
		{ActionNone, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.ok {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && dir != tc.dir {
				t.Errorf("Direction() = %s, expected %s", dir, tc.dir)
			}
		})
	}
}
