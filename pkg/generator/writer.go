// Copyright (c) 2025, Xiaofeng Zu.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/matthewzu/simple-build-framework/pkg/errors"
)

// lineWriter writes build-script lines and keeps the first write error.
// Once an error occurred every later call is a no-op.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func newLineWriter(w io.Writer) *lineWriter {
	return &lineWriter{w: bufio.NewWriter(w)}
}

// Line writes s followed by a newline.
func (lw *lineWriter) Line(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = lw.w.WriteString(s)
	if lw.err == nil {
		lw.err = lw.w.WriteByte('\n')
	}
}

// Linef writes one formatted line.
func (lw *lineWriter) Linef(format string, args ...any) {
	lw.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (lw *lineWriter) Blank() {
	lw.Line("")
}

// Comment writes each line of text prefixed with "# ".
func (lw *lineWriter) Comment(text string) {
	for _, l := range strings.Split(text, "\n") {
		lw.Line("# " + l)
	}
}

// Close flushes buffered output and returns the first error seen.
func (lw *lineWriter) Close() error {
	if lw.err == nil {
		lw.err = lw.w.Flush()
	}
	if lw.err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "write build script", lw.err)
	}
	return nil
}

func header(version string) string {
	if version == "" {
		version = "dev"
	}
	return "Generated by zmake " + version + ", do not edit."
}
