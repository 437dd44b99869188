package html

import (
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html>
<head><title>DecafMUD</title></head>
<body>
  <!-- panels -->
  <div id="sidebar" style="position: absolute; left: 10px; top: 20px">
    <div id="sidebar-title">Sidebar</div>
  </div>
</body>
</html>`

func TestParseBuildsDocument(t *testing.T) {
	doc, err := ParseString(page)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if doc.Body() == nil {
		t.Fatal("Expected body element")
	}
	sidebar := doc.GetElementById("sidebar")
	if sidebar == nil {
		t.Fatal("Expected #sidebar")
	}
	if got := sidebar.Style().GetPropertyValue("left"); got != "10px" {
		t.Errorf("Expected left '10px', got %q", got)
	}
	if got := sidebar.Style().GetPropertyValue("top"); got != "20px" {
		t.Errorf("Expected top '20px', got %q", got)
	}
	title := doc.GetElementById("sidebar-title")
	if title == nil || title.AsNode().ParentElement() != sidebar {
		t.Fatal("Expected #sidebar-title inside #sidebar")
	}
	if strings.TrimSpace(title.TextContent()) != "Sidebar" {
		t.Errorf("Expected title text 'Sidebar', got %q", title.TextContent())
	}
}

func TestParseFragmentGetsImpliedElements(t *testing.T) {
	doc, err := ParseString(`<div id="x"></div>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if doc.DocumentElement() == nil || doc.DocumentElement().LocalName() != "html" {
		t.Fatal("Expected implied html element")
	}
	if doc.GetElementById("x") == nil {
		t.Error("Expected #x to be found")
	}
}
