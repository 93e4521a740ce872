package blog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const validPost = `---
title: Why evals matter
description: A short argument for eval-first development.
date: "2026-01-16"
tags:
  - evals
  - engineering
---

# Why evals matter

You cannot improve what you do not measure.
`

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "why-evals-matter.md", validPost)
	writePost(t, dir, "notes.txt", "not a post")

	loader := NewLoader(dir, "")
	posts, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d, want 1", len(posts))
	}

	post := posts[0]
	if post.Slug != "why-evals-matter" {
		t.Errorf("Slug = %q", post.Slug)
	}
	if post.Title != "Why evals matter" {
		t.Errorf("Title = %q", post.Title)
	}
	if len(post.Tags) != 2 {
		t.Errorf("Tags = %v", post.Tags)
	}
	if post.Body == "" || LooksLikeHTML(post.Body) {
		t.Error("body should be the markdown content")
	}
}

func TestLoader_TitleFallsBackToHeading(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "untitled.md", "---\ndate: \"2026-01-10\"\n---\n\n# Heading Title\n\nBody.\n")

	loader := NewLoader(dir, "")
	posts, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Heading Title" {
		t.Fatalf("posts = %+v, want heading-derived title", posts)
	}
}

func TestLoader_SkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "good.md", validPost)
	writePost(t, dir, "no-front-matter.md", "# Just markdown\n")
	writePost(t, dir, "html-body.md", "---\ntitle: Rendered\ndate: \"2026-01-10\"\n---\n<html><body>rendered</body></html>\n")

	loader := NewLoader(dir, "")
	posts, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d, want only the valid post", len(posts))
	}
}

func TestLoader_Posts(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "why-evals-matter.md", validPost)
	writePost(t, dir, "undated.md", "---\ntitle: Undated\ndate: someday\n---\n\nBody.\n")

	loader := NewLoader(dir, "https://example.dev/blog")
	items, err := loader.Posts(t.Context())
	if err != nil {
		t.Fatalf("Posts() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want unparseable-date post dropped", len(items))
	}

	it := items[0]
	if it.Source != models.SourceBlog {
		t.Errorf("Source = %q", it.Source)
	}
	if it.URL != "https://example.dev/blog/why-evals-matter" {
		t.Errorf("URL = %q", it.URL)
	}
	if it.Granularity != models.GranularityDay {
		t.Errorf("Granularity = %q", it.Granularity)
	}
}

func TestLoader_PostsDescriptionFallsBackToPlainBody(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "plain.md", "---\ntitle: Plain\ndate: \"2026-01-16\"\n---\n\nJust a short announcement.\n")
	writePost(t, dir, "formatted.md", "---\ntitle: Formatted\ndate: \"2026-01-16\"\n---\n\n# Heading\n\n- a list\n")

	loader := NewLoader(dir, "https://example.dev/blog")
	items, err := loader.Posts(t.Context())
	if err != nil {
		t.Fatalf("Posts() error = %v", err)
	}

	byTitle := make(map[string]models.ContentItem)
	for _, it := range items {
		byTitle[it.Title] = it
	}
	if got := byTitle["Plain"].Description; got != "Just a short announcement." {
		t.Errorf("plain body should serve as description, got %q", got)
	}
	if got := byTitle["Formatted"].Description; got != "" {
		t.Errorf("markdown body should not leak into description, got %q", got)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"<!DOCTYPE html><html>", true},
		{"<html lang=\"en\">", true},
		{"# Heading\n\nbody", false},
		{"plain paragraph with <code>inline tags</code>", false},
	}
	for _, tt := range tests {
		if got := LooksLikeHTML(tt.in); got != tt.want {
			t.Errorf("LooksLikeHTML(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasMarkdownPatterns(t *testing.T) {
	if !HasMarkdownPatterns("# Heading") || !HasMarkdownPatterns("- item") || !HasMarkdownPatterns("[a](b)") {
		t.Error("markdown syntax should be detected")
	}
	if HasMarkdownPatterns("just a sentence") {
		t.Error("plain prose should not be detected as markdown")
	}
}
