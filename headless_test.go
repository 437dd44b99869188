package main

import (
	"strings"
	"testing"

	"github.com/chrisuehlinger/decafdrag/config"
)

func TestRunHeadlessDefaultDrag(t *testing.T) {
	var out strings.Builder
	if err := runHeadless(&out, config.Default(), "", "", nil); err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}
	want := "sidebar (30, 40)\nfont-settings (260, 40)\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestRunHeadlessScript(t *testing.T) {
	cfg := &config.Config{
		Window: config.Window{Width: 100, Height: 100},
		Panels: []config.Panel{{ID: "box", X: 5, Y: 5}},
	}
	script := `
		var d = new Draggable("box", {upper: {x: 8, y: 100}});
		dispatchMouse("box", "mousedown", 0, 0);
		dispatchMouse("document", "mousemove", 10, 10);
		dispatchMouse("document", "mouseup", 10, 10);
	`
	var out strings.Builder
	if err := runHeadless(&out, cfg, "drag.js", script, nil); err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}
	if out.String() != "box (8, 15)\n" {
		t.Errorf("Unexpected output %q", out.String())
	}

	if err := runHeadless(&out, cfg, "bad.js", "throw new Error('x')", nil); err == nil {
		t.Error("Expected script error")
	}
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil || len(cfg.Panels) == 0 {
		t.Fatalf("Expected default config, got %v %v", cfg, err)
	}
}
