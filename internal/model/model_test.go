// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEnvelope_Unwrap(t *testing.T) {
	raw := []byte(`{"message":"ok","trace":null,"data":{"resp":"pong","user":{"username":"admin","nick_name":"Admin","user_type":"personal","last_login":"2025-01-02 03:04"}}}`)

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	var home HomeInfo
	if err := env.Unwrap(&home); err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if home.User.Username != "admin" {
		t.Errorf("username = %q, want %q", home.User.Username, "admin")
	}
	if home.User.DisplayName() != "Admin" {
		t.Errorf("display name = %q, want nickname", home.User.DisplayName())
	}
}

func TestEnvelope_UnwrapEmptyData(t *testing.T) {
	var env Envelope
	var out HomeInfo
	if err := env.Unwrap(&out); err != nil {
		t.Fatalf("unwrap of empty data should be a no-op, got %v", err)
	}
}

func TestPermissionGrant_Active(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		grant PermissionGrant
		want  bool
	}{
		{"no expiry", PermissionGrant{PermissionItem: PermCreateDoc}, true},
		{"future expiry", PermissionGrant{PermissionItem: PermCreateDoc, ExpiredAt: &future}, true},
		{"past expiry", PermissionGrant{PermissionItem: PermCreateDoc, ExpiredAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grant.Active(now); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPermissionItem_IsValid(t *testing.T) {
	if !PermCreateDoc.IsValid() || !PermUploadFile.IsValid() {
		t.Error("known items should be valid")
	}
	if PermissionItem("delete_everything").IsValid() {
		t.Error("unknown item should be invalid")
	}
}

func TestUploadCredential_FileURL(t *testing.T) {
	tests := []struct {
		name string
		cred UploadCredential
		want string
	}{
		{
			name: "bare",
			cred: UploadCredential{CosURL: "https://cdn.example.com", Key: "u/1/a.png"},
			want: "https://cdn.example.com/u/1/a.png",
		},
		{
			name: "cdn signature",
			cred: UploadCredential{CosURL: "https://cdn.example.com", Key: "a.png", CDNSign: "s3cr3t", CDNSignParam: "sign"},
			want: "https://cdn.example.com/a.png?sign=s3cr3t",
		},
		{
			name: "image format only",
			cred: UploadCredential{CosURL: "https://cdn.example.com", Key: "a.png", ImageFormat: "imageMogr2/format/webp"},
			want: "https://cdn.example.com/a.png?imageMogr2/format/webp",
		},
		{
			name: "signature and format",
			cred: UploadCredential{CosURL: "https://cdn.example.com", Key: "a.png", CDNSign: "x", CDNSignParam: "sign", ImageFormat: "fmt"},
			want: "https://cdn.example.com/a.png?sign=x&fmt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cred.FileURL(); got != tt.want {
				t.Errorf("FileURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaginated_Decode(t *testing.T) {
	raw := []byte(`{"total":42,"current":2,"results":[{"id":"t1","name":"golang"}]}`)
	var page Paginated[TagInfo]
	if err := json.Unmarshal(raw, &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if page.Total != 42 || len(page.Results) != 1 || page.Results[0].Name != "golang" {
		t.Errorf("unexpected page: %+v", page)
	}
}
