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

// Package infinigram defines the top level types shared across the
// infini-gram engine: token ids, error codes and the event bus used to
// observe build and query progress.
//
// The implementations live in sub-packages: tokenizer, corpus, suffixarray,
// retriever and engine.
package infinigram

const (
	ErrInvalidQuery    = 1
	ErrCorruptArtifact = 2
	ErrBuildFailure    = 3
	ErrIOFailure       = 4
	ErrUnknown         = 127
)

// Error is a typed error carrying one of the Err* codes above. NotFound is
// deliberately not representable here: it is a successful result
// (EffectiveN == 0), never a fault.
type Error struct {
	msg  string
	code int
}

// NewError creates an Error with the given code and message.
func NewError(code int, msg string) *Error {
	return &Error{msg: msg, code: code}
}

func (e *Error) Error() string {
	return e.msg
}

// Code returns the Err* code for this error.
func (e *Error) Code() int {
	return e.code
}

// TokenID identifies a vocabulary element. EOD marks document boundaries and
// never occurs inside the tokenization of document text.
type TokenID = int32
