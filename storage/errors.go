// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

import "errors"

var (
	// ErrUnsupportedDocument is returned by Write for documents without a payload.
	ErrUnsupportedDocument = errors.New("document does not expose a structured payload")

	// ErrUnknownCodec is returned by CodecByName.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrEmptyDocument is returned when a file holds no content.
	ErrEmptyDocument = errors.New("empty document")
)
