package models

import "strings"

// OpenGraph is the link preview card read by social networks and chat apps
type OpenGraph struct {
	Title       string
	Description string
	Image       string // absolute URL
	Type        string
}

// SEO is the head metadata of a page
type SEO struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Robots      string // empty means indexable
	Locale      string
	Alternates  []string // other languages, served at Canonical?lang=xx
	Card        OpenGraph
	TwitterCard string
}

// NewSEO returns an indexable English page described by title and description
func NewSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		Locale:      "en",
		Card:        OpenGraph{Type: "website"},
		TwitterCard: "summary_large_image",
	}
}

func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithImage sets the preview card image
func (s *SEO) WithImage(url string) *SEO {
	s.Card.Image = url
	return s
}

func (s *SEO) WithKeywords(keywords string) *SEO {
	s.Keywords = keywords
	return s
}

// WithLocale sets the page language and the alternates advertised with hreflang
func (s *SEO) WithLocale(locale string, alternates ...string) *SEO {
	s.Locale = locale
	s.Alternates = alternates
	return s
}

// NoIndex keeps crawlers off the page
func (s *SEO) NoIndex() *SEO {
	s.Robots = "noindex, nofollow"
	return s
}

// Preview returns the preview card, borrowing the page title and
// description where the card leaves them empty.
func (s *SEO) Preview() OpenGraph {
	card := s.Card
	if card.Title == "" {
		card.Title = s.Title
	}
	if card.Description == "" {
		card.Description = s.Description
	}
	return card
}

// AlternateURL is the canonical URL with lang selected. It is empty
// without a canonical URL.
func (s *SEO) AlternateURL(lang string) string {
	if s.Canonical == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(s.Canonical, "?") {
		sep = "&"
	}
	return s.Canonical + sep + "lang=" + lang
}
