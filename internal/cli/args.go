// args.go - Unified argument parsing for docdeck CLI commands.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strconv"
	"strings"
)

// ArgParser provides consistent flag handling across commands:
//
//	--flag value     Long flag with space-separated value
//	--flag=value     Long flag with equals sign
//	--flag           Boolean flag (no value)
//
// Everything else is positional.
type ArgParser struct {
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
}

// NewArgParser parses raw arguments.
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
	}

	for i := 0; i < len(raw); {
		arg := raw[i]
		if !strings.HasPrefix(arg, "-") {
			p.positional = append(p.positional, arg)
			i++
			continue
		}

		if name, value, ok := strings.Cut(arg, "="); ok {
			name = strings.TrimLeft(name, "-")
			if value == "true" || value == "false" {
				p.boolFlags[name] = value == "true"
			} else {
				p.flags[name] = value
			}
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") && wantsValue(name) {
			p.flags[name] = raw[i+1]
			i += 2
		} else {
			p.boolFlags[name] = true
			i++
		}
	}
	return p
}

// wantsValue distinguishes value flags from boolean ones so that a
// positional after a boolean flag is not swallowed as its value.
func wantsValue(name string) bool {
	switch name {
	case "q", "page", "tag", "backend":
		return true
	}
	return false
}

// Flag returns a string flag value, or "".
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// BoolFlag reports whether a boolean flag was set.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// IntFlag returns an integer flag, or def when missing or malformed.
func (p *ArgParser) IntFlag(name string, def int) int {
	v, ok := p.flags[name]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Positional returns the non-flag arguments in order.
func (p *ArgParser) Positional() []string {
	return p.positional
}
