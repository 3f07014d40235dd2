// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

var tabs = []struct {
	page  string
	label string
}{
	{pageBrowse, "1 Recetas"},
	{pageFavorites, "2 Favoritos"},
	{pageAccount, "3 Cuenta"},
	{pageAdmin, "4 Admin"},
}

func renderTabs(current string, role models.Role) string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.page == pageAdmin && role != models.RoleAdmin {
			continue
		}
		active := t.page == current ||
			(t.page == pageAdmin && current == pageRecipeForm) ||
			(t.page == pageAccount && (current == pageLogin || current == pageRegister))
		if active {
			parts = append(parts, activeTabStyle.Render(t.label))
		} else {
			parts = append(parts, tabStyle.Render(t.label))
		}
	}
	return strings.Join(parts, "  ")
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("v: versión │ q: salir │ ctrl+c: salir"))

	return b.String()
}

// writeMessages appends the status and error lines shared by every page.
func writeMessages(b *strings.Builder, status, errMsg string) {
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// formatNumber renders whole numbers without a decimal part.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCookTime(minutes float64) string {
	return formatNumber(minutes) + " min"
}

// titleCase upper-cases the first letter, for lower-cased backend values.
func titleCase(v string) string {
	r := []rune(v)
	if len(r) == 0 {
		return v
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func favoriteMark(isFavorite bool) string {
	if isFavorite {
		return favoriteStyle.Render("★")
	}
	return " "
}

func recipeLine(cursor bool, isFavorite bool, r models.Recipe) string {
	marker := " "
	if cursor {
		marker = ">"
	}
	return fmt.Sprintf("%s %s %-32s │ %-8s │ %-10s │ %s",
		marker,
		favoriteMark(isFavorite),
		fitText(r.Name, 32),
		formatCookTime(r.CookTime),
		titleCase(r.Difficulty),
		r.Category,
	)
}

// clampIndex keeps a list cursor inside [0, n).
func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// numberedLines renders items as "1. item" lines.
func numberedLines(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return strings.TrimRight(b.String(), "\n")
}
