package data

import (
	"errors"
	"fmt"

	"github.com/Zachkp/folio/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

var projects = []models.Project{
	{
		Slug:  "mailtui",
		Title: "mailtui",
		Description: `A terminal-based email client built in Go with fuzzyfinder capabilities
using the Charmbracelet TUI framework and go-imap.`,
		TechStack: []string{"Go", "Bubble Tea", "Lip Gloss", "go-imap", "fuzzyfinder", "SQLite"},
		Thumbnail: "/images/projects/mailtui.png",
		Links: models.Links{
			GitHub: "https://github.com/Zachkp/mailtui",
		},
		CaseStudy: &models.CaseStudy{
			Problem:  "Web mail clients are slow to search and impossible to drive from the keyboard alone.",
			Approach: "Synced mailboxes over IMAP into a local cache and put a fuzzy finder in front of every list view.",
			Outcome:  "Search across years of mail returns in milliseconds and every action has a key binding.",
		},
	},
	{
		Slug:  "ytm-cli",
		Title: "ytm-cli",
		Description: `A terminal-based music streaming application built in Go with an elegant TUI
interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`,
		TechStack: []string{"Go", "Bubble Tea", "yt-dlp", "mpv"},
		Thumbnail: "/images/projects/ytm-cli.png",
		Links: models.Links{
			GitHub: "https://github.com/Zachkp/ytm-cli",
		},
	},
	{
		Slug:  "game-recommender",
		Title: "Game Recommender",
		Description: `A machine learning-powered web application that uses TF-IDF vectorization and cosine
similarity to recommend games based on content analysis, featuring interactive data visualizations and
real-time filtering by user reviews and ratings.`,
		TechStack: []string{"Python", "scikit-learn", "pandas", "Flask", "Plotly", "TF-IDF", "Docker"},
		Thumbnail: "/images/projects/game-recommender.png",
		Links: models.Links{
			GitHub: "https://github.com/Zachkp/game-recommender",
			Demo:   "https://games.zach.dev",
		},
		CaseStudy: &models.CaseStudy{
			Problem:  "Store pages recommend what sells, not what resembles the games a player already loves.",
			Approach: "Vectorized game descriptions and tags with TF-IDF and ranked candidates by cosine similarity, filterable by review score.",
			Outcome:  "Recommendations explain themselves through shared terms and the filters narrow results in real time.",
		},
	},
	{
		Slug:  "folio",
		Title: "This Portfolio",
		Description: `A modern, responsive portfolio website built with Go, Gin framework, and HTMX for
dynamic interactions, styled with design tokens and utility classes generated on the server.`,
		TechStack: []string{"Go", "Gin", "HTMX", "SQLite"},
		Links:     models.Links{},
	},
}

// Projects returns every project in display order. The returned slice is a
// copy; the records themselves are never mutated.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	return out
}

// ProjectBySlug returns the project with the given slug.
func ProjectBySlug(slug string) (models.Project, error) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}
