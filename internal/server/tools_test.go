package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_sample_color",
		"image_dominant_colors",
		"image_count_matches",
		"image_recolor",
		"image_placeholder",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}

			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
				}
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s has no property schema", r)
				}
			}
			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_RecolorParameters(t *testing.T) {
	var tool Tool
	for _, tt := range GetToolDefinitions() {
		if tt.Name == "image_recolor" {
			tool = tt
		}
	}
	if tool.Name == "" {
		t.Fatal("image_recolor tool not found")
	}

	required := tool.InputSchema["required"].([]string)
	want := map[string]bool{"path": true, "output": true, "target": true, "replacement": true}
	for _, r := range required {
		delete(want, r)
	}
	for missing := range want {
		t.Errorf("image_recolor should require '%s'", missing)
	}

	props := tool.InputSchema["properties"].(map[string]interface{})
	threshold, ok := props["threshold"].(map[string]interface{})
	if !ok {
		t.Fatal("threshold property missing")
	}
	if threshold["default"] != 100 {
		t.Errorf("threshold default: got %v, want 100", threshold["default"])
	}
}
