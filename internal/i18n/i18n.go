// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"context"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/store"
)

// Supported locale codes, matching what the backend accepts on
// POST /i18n/.
const (
	LangZhHans = "zh-hans"
	LangEn     = "en"
)

// matcher resolves arbitrary BCP 47 input (config values, LANG
// environment) onto the two supported locales.
var matcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese, // zh-hans, the default
	language.English,
})

// Bundle is the active translation table.
type Bundle struct {
	lang    string
	strings map[string]string
}

// Lang returns the active locale code.
func (b *Bundle) Lang() string {
	return b.lang
}

// T looks up a message by key, falling back to the key itself so a
// missing entry is visible but never fatal.
func (b *Bundle) T(key string) string {
	if s, ok := b.strings[key]; ok {
		return s
	}
	return key
}

// Load returns the bundle for a locale code. Unknown codes match to the
// closest supported locale.
func Load(code string) *Bundle {
	switch Normalize(code) {
	case LangEn:
		return &Bundle{lang: LangEn, strings: msgEn}
	default:
		return &Bundle{lang: LangZhHans, strings: msgZhHans}
	}
}

// Normalize maps any locale-ish input ("zh", "zh-CN", "en_US.UTF-8") to
// a supported code.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexByte(code, '.'); i >= 0 {
		code = code[:i]
	}
	code = strings.ReplaceAll(code, "_", "-")
	if code == "" {
		return LangZhHans
	}

	tag, err := language.Parse(code)
	if err != nil {
		return LangZhHans
	}
	// Match reports an index even for unrelated locales, with No
	// confidence. Only a real match may select English; anything else
	// keeps the default.
	_, idx, conf := matcher.Match(tag)
	if idx == 1 && conf > language.No {
		return LangEn
	}
	return LangZhHans
}

// =============================================================================
// SELECTION AND PERSISTENCE
// =============================================================================

// Detect picks the locale for this session: the stored preference wins,
// then the configured language, then the LANG environment variable, then
// the default. st and configured may be empty/nil.
func Detect(st *store.Store, configured string) string {
	if st != nil {
		if saved, err := st.Get(store.SlotLanguage); err == nil && saved != "" {
			return Normalize(saved)
		}
	}
	if configured != "" {
		return Normalize(configured)
	}
	if env := os.Getenv("LANG"); env != "" {
		return Normalize(env)
	}
	return LangZhHans
}

// Persist records the chosen locale locally and, when a client is
// given, mirrors it to the backend so web sessions agree. The backend
// call failing does not undo the local choice.
func Persist(ctx context.Context, st *store.Store, client *api.Client, code string) error {
	code = Normalize(code)
	if st != nil {
		if err := st.Set(store.SlotLanguage, code); err != nil {
			return err
		}
	}
	if client != nil {
		return client.ChangeLanguage(ctx, code)
	}
	return nil
}
