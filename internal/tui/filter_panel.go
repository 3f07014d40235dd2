// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

var dimensionLabels = map[models.FilterDimension]string{
	models.DimensionTime:         "Tiempo (min)",
	models.DimensionDifficulty:   "Dificultad",
	models.DimensionType:         "Tipo",
	models.DimensionRestrictions: "Restricciones",
}

type panelOption struct {
	dim    models.FilterDimension
	option models.FilterOption
}

// filterPanel is the chip selector of the browse page. It edits nothing by
// itself: toggling returns the next state for the caller to apply.
type filterPanel struct {
	options []panelOption
	cursor  int
}

func newFilterPanel() filterPanel {
	var options []panelOption
	for _, dim := range models.FilterDimensions {
		for _, opt := range models.FilterCatalog[dim] {
			options = append(options, panelOption{dim: dim, option: opt})
		}
	}
	return filterPanel{options: options}
}

func (p *filterPanel) next() {
	if p.cursor < len(p.options)-1 {
		p.cursor++
	}
}

func (p *filterPanel) prev() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// nextSection jumps to the first option of the following dimension.
func (p *filterPanel) nextSection() {
	current := p.options[p.cursor].dim
	for i := p.cursor + 1; i < len(p.options); i++ {
		if p.options[i].dim != current {
			p.cursor = i
			return
		}
	}
}

func (p *filterPanel) prevSection() {
	current := p.options[p.cursor].dim
	i := p.cursor - 1
	for i >= 0 && p.options[i].dim == current {
		i--
	}
	if i < 0 {
		return
	}
	prevDim := p.options[i].dim
	for i > 0 && p.options[i-1].dim == prevDim {
		i--
	}
	p.cursor = i
}

// toggle returns state with the option under the cursor flipped.
func (p filterPanel) toggle(state models.FilterState) models.FilterState {
	if len(p.options) == 0 {
		return state
	}
	o := p.options[p.cursor]
	return state.Toggle(o.dim, o.option.Key)
}

func (p filterPanel) View(state models.FilterState) string {
	var b strings.Builder
	var last models.FilterDimension
	for i, o := range p.options {
		if o.dim != last {
			if last != "" {
				b.WriteString("\n")
			}
			b.WriteString(dimensionLabels[o.dim])
			b.WriteString(":\n")
			last = o.dim
		}

		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}
		mark := "[ ]"
		if state.Selected(o.dim, o.option.Key) {
			mark = "[x]"
		}
		b.WriteString(cursor)
		b.WriteString(mark)
		b.WriteString(" ")
		b.WriteString(o.option.Label)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// summarizeFilters renders the active selection on one line.
func summarizeFilters(state models.FilterState) string {
	if state.IsEmpty() {
		return "sin filtros"
	}
	parts := make([]string, 0, len(models.FilterDimensions))
	for _, dim := range models.FilterDimensions {
		values := state.Values(dim)
		if len(values) == 0 {
			continue
		}
		parts = append(parts, dimensionLabels[dim]+": "+strings.Join(values, ", "))
	}
	return strings.Join(parts, " │ ")
}
