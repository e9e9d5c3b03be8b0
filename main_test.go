package main

import "testing"

func TestNewApp(t *testing.T) {
	app := newApp()

	want := []string{"serve", "scrape", "validate", "headers", "redirects", "quickstart", "cache"}
	if len(app.Commands) != len(want) {
		t.Fatalf("got %d commands, want %d", len(app.Commands), len(want))
	}
	for i, name := range want {
		if app.Commands[i].Name != name {
			t.Errorf("command %d = %q, want %q", i, app.Commands[i].Name, name)
		}
		if app.Commands[i].Action == nil && len(app.Commands[i].Subcommands) == 0 {
			t.Errorf("command %q does nothing", name)
		}
	}
	var subs []string
	for _, sub := range app.Command("cache").Subcommands {
		subs = append(subs, sub.Name)
	}
	if len(subs) != 2 || subs[0] != "stats" || subs[1] != "purge" {
		t.Errorf("cache subcommands = %v", subs)
	}
}
