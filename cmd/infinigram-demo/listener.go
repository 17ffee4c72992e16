/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"io"

	"github.com/infinigram-go/infinigram"
)

// consoleListener prints one line per event to writer, backing the
// demo's "--verbose" option.
type consoleListener struct {
	writer io.Writer
}

func newConsoleListener(w io.Writer) *consoleListener {
	return &consoleListener{writer: w}
}

func (c *consoleListener) ProcessEvent(evt *infinigram.Event) {
	fmt.Fprintf(c.writer, "[%s] %s (size=%d)\n", eventName(evt.Type()), evt.Message(), evt.Size())
}

func eventName(evtType int) string {
	switch evtType {
	case infinigram.EvtBuildStart:
		return "build-start"
	case infinigram.EvtBuildEnd:
		return "build-end"
	case infinigram.EvtSuffixArrayEnd:
		return "suffix-array-end"
	case infinigram.EvtQueryBatchEnd:
		return "query-batch-end"
	case infinigram.EvtPersistEnd:
		return "persist-end"
	default:
		return "event"
	}
}
