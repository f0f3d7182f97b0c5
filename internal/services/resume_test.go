package services

import (
	"reflect"
	"testing"
)

func TestExtractGithubURL(t *testing.T) {
	extractor := NewProfileExtractor()

	testCases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "labeled full url",
			text: "Contact me anytime.\nGitHub: https://github.com/octocat\nEmail: octo@example.com",
			want: "https://github.com/octocat",
			ok:   true,
		},
		{
			name: "bare url",
			text: "See github.com/torvalds for my projects.",
			want: "https://github.com/torvalds",
			ok:   true,
		},
		{
			name: "labeled username only",
			text: "github: octocat",
			want: "https://github.com/octocat",
			ok:   true,
		},
		{
			name: "profile label",
			text: "GitHub Profile: www.github.com/hubot",
			want: "https://github.com/hubot",
			ok:   true,
		},
		{
			name: "no reference",
			text: "Experienced backend developer with ten years of Go.",
			ok:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractor.ExtractGithubURL(tc.text)
			if ok != tc.ok {
				t.Fatalf("ExtractGithubURL(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("ExtractGithubURL(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractSkills(t *testing.T) {
	extractor := NewProfileExtractor()

	text := "John Doe\nSenior Engineer\n\nSkills: Python, Go, C++\n\nExperience\nAcme Corp, 2019-2024"
	got := extractor.ExtractSkills(text)
	want := []string{"Python", "Go", "C++"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSkills = %v, want %v", got, want)
	}
}

func TestExtractSkillsMultiline(t *testing.T) {
	extractor := NewProfileExtractor()

	text := "Technical Skills\nJavaScript and TypeScript\nDocker, Kubernetes\n\nEducation\nSome University"
	got := extractor.ExtractSkills(text)
	want := []string{"JavaScript", "and", "TypeScript", "Docker", "Kubernetes"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSkills = %v, want %v", got, want)
	}
}

func TestExtractSkillsShortTokens(t *testing.T) {
	extractor := NewProfileExtractor()

	// Noise tokens at or below two characters are dropped, but well-known
	// short language names survive.
	text := "Skills: Go, C#, ab, of, Rust"
	got := extractor.ExtractSkills(text)
	want := []string{"Go", "C#", "Rust"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractSkills = %v, want %v", got, want)
	}
}

func TestExtractSkillsNoSection(t *testing.T) {
	extractor := NewProfileExtractor()

	if got := extractor.ExtractSkills("A resume with no relevant heading at all."); got != nil {
		t.Errorf("ExtractSkills = %v, want nil", got)
	}
}

func TestIdentityFromURL(t *testing.T) {
	identity := IdentityFromURL("https://github.com/octocat/")
	if identity.Username != "octocat" {
		t.Errorf("Username = %q, want %q", identity.Username, "octocat")
	}
	if identity.ProfileURL != "https://github.com/octocat" {
		t.Errorf("ProfileURL = %q, want %q", identity.ProfileURL, "https://github.com/octocat")
	}
}
