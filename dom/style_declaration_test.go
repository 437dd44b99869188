package dom

import "testing"

func TestCSSStyleDeclarationSetProperty(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	sd := el.Style()

	if sd.Length() != 0 || sd.CSSText() != "" {
		t.Fatalf("Expected empty declaration, got %q", sd.CSSText())
	}

	sd.SetProperty("left", "10px")
	sd.SetProperty("top", "20px")
	if sd.GetPropertyValue("left") != "10px" {
		t.Errorf("Expected left '10px', got %q", sd.GetPropertyValue("left"))
	}
	if el.GetAttribute("style") != "left: 10px; top: 20px" {
		t.Errorf("Expected style attribute synced, got %q", el.GetAttribute("style"))
	}

	sd.SetProperty("left", "")
	if sd.Length() != 1 || el.GetAttribute("style") != "top: 20px" {
		t.Errorf("Expected empty value to remove property, got %q", el.GetAttribute("style"))
	}

	if old := sd.RemoveProperty("top"); old != "20px" {
		t.Errorf("Expected old value '20px', got %q", old)
	}
	if el.HasAttribute("style") {
		t.Error("Expected style attribute removed when empty")
	}
}

func TestCSSStyleDeclarationFromAttribute(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("style", "position: absolute; left:0px;top: 5px !important; bogus")

	sd := el.Style()
	if sd.Length() != 3 {
		t.Fatalf("Expected 3 properties, got %d (%q)", sd.Length(), sd.CSSText())
	}
	if sd.GetPropertyValue("top") != "5px" || sd.GetPropertyPriority("top") != "important" {
		t.Errorf("Expected top 5px !important, got %q %q", sd.GetPropertyValue("top"), sd.GetPropertyPriority("top"))
	}

	el.SetAttribute("style", "left: 7px")
	if sd.GetPropertyValue("left") != "7px" || sd.Length() != 1 {
		t.Errorf("Expected re-parse after attribute change, got %q", sd.CSSText())
	}
}

func TestCSSStyleDeclarationCamelCase(t *testing.T) {
	doc := NewDocument()
	sd := doc.CreateElement("div").Style()

	sd.SetProperty("backgroundColor", "#fff", "IMPORTANT")
	if sd.GetPropertyValue("background-color") != "#fff" {
		t.Errorf("Expected kebab-case storage, got %q", sd.CSSText())
	}
	if sd.CSSText() != "background-color: #fff !important" {
		t.Errorf("Unexpected cssText %q", sd.CSSText())
	}

	sd.SetCSSText("zIndex: 3")
	if sd.GetPropertyValue("z-index") != "3" || sd.Length() != 1 {
		t.Errorf("Expected SetCSSText to replace, got %q", sd.CSSText())
	}
}
