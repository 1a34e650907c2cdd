package datagrid

import "testing"

func TestKeyDown_ArrowKeys(t *testing.T) {
	tests := []struct {
		key  Key
		name string
	}{
		{KeyArrowUp, "Up"},
		{KeyArrowDown, "Down"},
		{KeyArrowLeft, "Left"},
		{KeyArrowRight, "Right"},
		{Key(99), "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := KeyDown(tt.key, 0, ModShift)
			if ev.Kind != EventKeyDown || ev.Key != tt.key || !ev.Mods.Has(ModShift) {
				t.Errorf("KeyDown(%d) = %+v", tt.key, ev)
			}
			if got := KeyName(tt.key); got != tt.name {
				t.Errorf("KeyName(%d) = %q, want %q", tt.key, got, tt.name)
			}
		})
	}
}
