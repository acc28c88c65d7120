// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package exitcode

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/skinstudio-core/config"
	"github.com/stacklok/skinstudio-core/manager"
	"github.com/stacklok/skinstudio-core/registry"
	"github.com/stacklok/skinstudio-core/schema"
)

var errMissing = errors.New("missing")

func TestCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, OK},
		{"plain error", errMissing, Failure},
		{"coded", WithCode(errMissing, NotFound), NotFound},
		{"wrapped coded", fmt.Errorf("opening: %w", WithCode(errMissing, Invalid)), Invalid},
		{"outermost wins", WithCode(WithCode(errMissing, NotFound), Usage), Usage},
		{"new", New("bad flag", Usage), Usage},
		{"missing file", fmt.Errorf("open: %w", os.ErrNotExist), NotFound},
		{"missing template", fmt.Errorf("create: %w", registry.ErrNoTemplateFound), NotFound},
		{"schema failure", fmt.Errorf("open: %w", schema.ErrValidation), Invalid},
		{"bad settings", fmt.Errorf("load: %w", config.ErrInvalid), Invalid},
		{"no reference", manager.ErrMissingReference, Invalid},
		{"pin overrides class", WithCode(os.ErrNotExist, Usage), Usage},
		{"joined takes not found first", errors.Join(schema.ErrValidation, os.ErrNotExist), NotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Code(tc.err))
		})
	}
}

func TestWithCode(t *testing.T) {
	t.Parallel()

	require.NoError(t, WithCode(nil, NotFound))

	err := WithCode(errMissing, NotFound)
	require.ErrorIs(t, err, errMissing)
	assert.Equal(t, "missing", err.Error())

	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, NotFound, coded.ExitCode())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OK, Classify(nil))
	assert.Equal(t, Failure, Classify(errMissing))
	assert.Equal(t, NotFound, Classify(WithCode(os.ErrNotExist, Usage)), "pins are ignored")
	assert.Equal(t, Invalid, Classify(fmt.Errorf("x: %w", schema.ErrValidation)))
}
