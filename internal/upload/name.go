// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// GenerateName builds the stored file name for an uploaded file:
// the upload time in unix milliseconds, a dash, then the original base name
// in NFC form with every run of whitespace replaced by a single dash.
//
// Directory components of original are discarded. The extension is kept once.
//
//	GenerateName("my cover.png", t) // "1718000000000-my-cover.png"
func GenerateName(original string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	stem = norm.NFC.String(strings.TrimSpace(stem))
	stem = whitespaceRun.ReplaceAllString(stem, "-")
	if stem == "" {
		stem = "file"
	}

	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + stem + ext
}
