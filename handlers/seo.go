package handlers

import (
	"retailnexa_site/models"
	"retailnexa_site/services/i18n"
)

// ogImage is the preview card shared by every public page
const ogImage = "/static/images/og-image.png"

// SEO configurations for public pages. URLs are filled in from APP_URL.
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "RetailNexa AI - The AI Operating System for Independent Retail",
		Description: "RetailNexa reconciles POS sales against bank deposits, automates inventory reorders, flags shrinkage and answers the store phone. Built for independent retail owners.",
		Keywords:    "retail AI, POS reconciliation, bank deposit reconciliation, inventory reorder automation, shrinkage alerts, AI phone agent, independent retail",
		Card:        models.OpenGraph{Type: "website"},
		TwitterCard: "summary_large_image",
	},
}

// GetSEO returns the SEO configuration for a page
func GetSEO(page string) *models.SEO {
	if seo, ok := pageSEO[page]; ok {
		// Return a copy to avoid mutations
		c := *seo
		return &c
	}
	return nil
}

// LandingSEO returns the landing page SEO for locale, advertising every
// other loaded language as an alternate.
func LandingSEO(baseURL, locale string) *models.SEO {
	var alternates []string
	for _, lang := range i18n.Languages() {
		if lang != locale {
			alternates = append(alternates, lang)
		}
	}
	return GetSEO("landing").
		WithCanonical(baseURL+"/").
		WithImage(baseURL+ogImage).
		WithLocale(locale, alternates...)
}
