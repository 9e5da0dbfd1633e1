// file: internals/features/tournaments/dto/legacy_tournament_dto.go
package dto

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

/* =========================================================
   Shared helpers
   ========================================================= */

// cleanText trims and NFC-normalises user input so composed and decomposed
// forms of the same title compare equal.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// unescapeParam decodes a raw path segment; fiber hands params over undecoded.
func unescapeParam(s string) string {
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}

/* =========================================================
   Query: GET /api/tournaments/search?q=
   ========================================================= */

type SearchTournamentsQuery struct {
	Q string `query:"q" validate:"required,max=100"`
}

func (q *SearchTournamentsQuery) Normalize() {
	q.Q = cleanText(q.Q)
}

/* =========================================================
   Path params
   ========================================================= */

type TournamentTypeParam struct {
	Type string `params:"type" validate:"required,max=32"`
}

func (p *TournamentTypeParam) Normalize() {
	p.Type = strings.ToLower(strings.TrimSpace(unescapeParam(p.Type)))
}

type TournamentNameParam struct {
	Name string `params:"name" validate:"required,max=200"`
}

func (p *TournamentNameParam) Normalize() {
	p.Name = cleanText(unescapeParam(p.Name))
}

type TournamentIDParam struct {
	ID string `params:"id" validate:"required,max=64"`
}

func (p *TournamentIDParam) Normalize() {
	p.ID = strings.TrimSpace(unescapeParam(p.ID))
}
