// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, false, false)
	L().Debug().Msg("hidden")
	L().Info().Msg("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message written at info level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"message":"shown"`) {
		t.Errorf("expected info message, got: %s", buf.String())
	}

	buf.Reset()
	InitWriter(&buf, true, true)
	L().Debug().Msg("console")
	if !strings.Contains(buf.String(), "console") {
		t.Errorf("expected debug message, got: %s", buf.String())
	}
	if strings.Contains(buf.String(), `"message"`) {
		t.Errorf("expected console output, got JSON: %s", buf.String())
	}

	Init(false, false)
}

func TestWithFile(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	log := WithFile("reads.fq.gz")
	log.Info().Msg("processing")

	if !bytes.Contains(buf.Bytes(), []byte(`"file":"reads.fq.gz"`)) {
		t.Errorf("expected file field in output, got: %s", buf.String())
	}

	Init(false, false)
}
