package datagrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestActionRegistry(t *testing.T) {
	r := NewActionRegistry()
	var calls []string
	enabled := false

	r.Register("Sort", func() { calls = append(calls, "sort") })
	r.RegisterWithCondition("Clear", func() { calls = append(calls, "clear") }, func() bool { return enabled })
	r.RegisterEntry(ActionEntry{Name: "Toggle", Handler: func() {}, Checked: func() bool { return true }})

	if diff := cmp.Diff([]string{"Sort", "Clear", "Toggle"}, r.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}

	if !r.Invoke("Sort") {
		t.Error("Invoke(Sort) = false")
	}
	if r.Invoke("Clear") {
		t.Error("disabled action ran")
	}
	enabled = true
	if !r.Invoke("Clear") {
		t.Error("enabled action did not run")
	}
	if r.Invoke("Missing") {
		t.Error("unknown action reported success")
	}
	if diff := cmp.Diff([]string{"sort", "clear"}, calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}

	if e, ok := r.Lookup("Toggle"); !ok || !e.IsChecked() {
		t.Errorf("Lookup(Toggle) = %+v, %v", e, ok)
	}
	if e, _ := r.Lookup("Sort"); e.IsChecked() {
		t.Error("action without a checkbox reported checked")
	}
}

func TestActionRegistry_ReplaceKeepsPosition(t *testing.T) {
	r := NewActionRegistry()
	got := ""
	r.Register("A", func() { got = "old" })
	r.Register("B", func() {})
	r.Register("A", func() { got = "new" })

	if diff := cmp.Diff([]string{"A", "B"}, r.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}
	r.Invoke("A")
	if got != "new" {
		t.Errorf("Invoke ran the %s handler", got)
	}

	r.Unregister("A")
	r.Unregister("missing")
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	r.Clear()
	if r.Len() != 0 || len(r.Entries()) != 0 {
		t.Error("Clear left entries behind")
	}
}

func TestActionEntry_NilHandlerDisabled(t *testing.T) {
	r := NewActionRegistry()
	r.Register("Nothing", nil)
	if r.Invoke("Nothing") {
		t.Error("action without a handler ran")
	}
}
