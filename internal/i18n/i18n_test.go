// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/store"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", LangEn},
		{"en-US", LangEn},
		{"en_US.UTF-8", LangEn},
		{"zh", LangZhHans},
		{"zh-CN", LangZhHans},
		{"zh-hans", LangZhHans},
		{"", LangZhHans},
		{"garbage!!", LangZhHans},
		{"fr", LangZhHans},
		{"de-DE", LangZhHans},
		{"ja_JP.UTF-8", LangZhHans},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	b := Load("en")
	if b.Lang() != LangEn {
		t.Errorf("Lang = %q", b.Lang())
	}
	if got := b.T("common.save"); got != "Save" {
		t.Errorf("T(common.save) = %q", got)
	}

	b = Load("zh-CN")
	if got := b.T("common.save"); got != "保存" {
		t.Errorf("T(common.save) = %q", got)
	}

	// Missing keys surface the key rather than an empty string.
	if got := b.T("no.such.key"); got != "no.such.key" {
		t.Errorf("T(missing) = %q", got)
	}
}

func TestMessageTablesAligned(t *testing.T) {
	for k := range msgZhHans {
		if _, ok := msgEn[k]; !ok {
			t.Errorf("key %q missing from en table", k)
		}
	}
	for k := range msgEn {
		if _, ok := msgZhHans[k]; !ok {
			t.Errorf("key %q missing from zh-hans table", k)
		}
	}
}

func TestDetect_Precedence(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()
	t.Setenv("LANG", "en_US.UTF-8")

	// Environment applies when nothing else is set.
	if got := Detect(st, ""); got != LangEn {
		t.Errorf("Detect(env only) = %q", got)
	}

	// Config beats environment.
	if got := Detect(st, "zh-CN"); got != LangZhHans {
		t.Errorf("Detect(config) = %q", got)
	}

	// Stored preference beats both.
	st.Set(store.SlotLanguage, "en")
	if got := Detect(st, "zh-CN"); got != LangEn {
		t.Errorf("Detect(stored) = %q", got)
	}
}

func TestPersist(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer srv.Close()
	t.Setenv("HOME", t.TempDir())

	st, err := store.Open(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	client, err := api.New(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}

	if err := Persist(context.Background(), st, client, "en-US"); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if gotBody["language"] != "en" {
		t.Errorf("backend received %q, want normalized en", gotBody["language"])
	}
	if saved, _ := st.Get(store.SlotLanguage); saved != "en" {
		t.Errorf("stored %q, want en", saved)
	}
}
