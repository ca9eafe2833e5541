// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"net/url"
	"strconv"
	"strings"
)

// TagPrefix marks a token as a tag reference rather than a free keyword.
// The comparison is exact-prefix and case-sensitive.
const TagPrefix = "tag:"

// Token is one unit of search input: either a bare keyword or a tag
// reference carrying the reserved prefix.
type Token string

// IsTag reports whether the token is a tag reference.
func (t Token) IsTag() bool {
	return strings.HasPrefix(string(t), TagPrefix)
}

// TagName returns the tag name without the prefix. For keyword tokens it
// returns the token unchanged.
func (t Token) TagName() string {
	return strings.TrimPrefix(string(t), TagPrefix)
}

// TagToken builds the token form of a tag name.
func TagToken(name string) Token {
	return Token(TagPrefix + name)
}

// Query is the decoded search state: an ordered, duplicate-free token
// list plus the 1-based page number.
type Query struct {
	Tokens []Token
	Page   int
}

// Query-string parameter names. "q" is the unified format; "keywords"
// and "tags" are the legacy two-field format kept for old deep links.
const (
	paramQuery    = "q"
	paramPage     = "page"
	paramKeywords = "keywords"
	paramTags     = "tags"
)

// =============================================================================
// ENCODE / DECODE
// =============================================================================

// Encode serializes tokens and page into a query string. Page 1 and an
// empty token list are omitted so the default state encodes to "".
// The legacy two-field form is never written.
func Encode(tokens []Token, page int) string {
	params := url.Values{}
	if len(tokens) > 0 {
		joined := make([]string, 0, len(tokens))
		for _, t := range tokens {
			joined = append(joined, string(t))
		}
		params.Set(paramQuery, strings.Join(joined, ","))
	}
	if page > 1 {
		params.Set(paramPage, strconv.Itoa(page))
	}
	return params.Encode()
}

// rawQuery is the pre-upgrade form of a decoded query string: either the
// unified single-parameter format or the legacy two-field one.
type rawQuery interface {
	upgrade() []Token
}

type unifiedQuery struct {
	q string
}

func (u unifiedQuery) upgrade() []Token {
	return dedupe(splitTokens(u.q, ""))
}

type legacyQuery struct {
	keywords string
	tags     string
}

// upgrade merges the two legacy fields into unified tokens: keywords
// first, then tags with the prefix added, order preserved within each
// group. One-way: nothing ever writes the legacy form back.
func (l legacyQuery) upgrade() []Token {
	tokens := splitTokens(l.keywords, "")
	tokens = append(tokens, splitTokens(l.tags, TagPrefix)...)
	return dedupe(tokens)
}

// Decode parses a query string into tokens and page. The unified "q"
// parameter wins when present; otherwise the legacy keywords/tags pair
// is upgraded. A malformed or empty string decodes to the default state.
func Decode(queryString string) Query {
	params, err := url.ParseQuery(queryString)
	if err != nil {
		return Query{Page: 1}
	}

	var raw rawQuery
	if params.Has(paramQuery) {
		raw = unifiedQuery{q: params.Get(paramQuery)}
	} else {
		raw = legacyQuery{keywords: params.Get(paramKeywords), tags: params.Get(paramTags)}
	}

	page, _ := strconv.Atoi(params.Get(paramPage))
	if page < 1 {
		page = 1
	}
	return Query{Tokens: raw.upgrade(), Page: page}
}

// Partition splits tokens into bare keywords and tag names (prefix
// stripped), preserving relative order within each group. It is a pure
// function of the token list; the groups are never stored separately.
func Partition(tokens []Token) (keywords, tags []string) {
	for _, t := range tokens {
		if t.IsTag() {
			tags = append(tags, t.TagName())
		} else {
			keywords = append(keywords, string(t))
		}
	}
	return keywords, tags
}

// splitTokens splits a comma-joined list, dropping empty segments and
// prepending prefix to each survivor.
func splitTokens(s, prefix string) []Token {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tokens := make([]Token, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		tokens = append(tokens, Token(prefix+p))
	}
	return tokens
}

// dedupe drops repeated tokens, keeping first occurrence order.
func dedupe(tokens []Token) []Token {
	if len(tokens) < 2 {
		return tokens
	}
	seen := make(map[Token]struct{}, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
