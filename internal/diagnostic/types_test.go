package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "message only",
			d:    Diagnostic{Message: "plain"},
			want: "plain",
		},
		{
			name: "code and pair",
			d:    Diagnostic{Code: "unmapped_target", Message: "no source", TypePair: "a.A->b.B"},
			want: "[a.A->b.B]: [unmapped_target] no source",
		},
		{
			name: "full",
			d: Diagnostic{
				Code:        "unknown_include",
				Message:     "ignored",
				TypePair:    "a.A->b.B",
				FieldPath:   "Lines",
				Suggestions: []string{"Items", "Owner"},
			},
			want: "[a.A->b.B] Lines: [unknown_include] ignored (candidates: Items, Owner)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnosticsErr(t *testing.T) {
	d := &Diagnostics{}
	d.AddWarning("explicit_only_skip", "skipped", "a.A->b.B", "Name")
	d.AddInfo("note", "fyi", "", "")

	require.NoError(t, d.Err())
	assert.True(t, d.IsValid())
	assert.Equal(t, 2, d.Len())

	d.AddError("bad", "broken", "", "X")

	err := d.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDiagnostics))
	assert.Equal(t, "X: [bad] broken", err.Error())

	var target *Diagnostics
	require.ErrorAs(t, err, &target)
	assert.Same(t, d, target)
}

func TestDiagnosticsNil(t *testing.T) {
	var d *Diagnostics

	assert.NoError(t, d.Err())
	assert.Zero(t, d.Len())
	assert.Empty(t, d.All())
}

func TestPromote(t *testing.T) {
	d := &Diagnostics{}
	d.AddWarning("unmapped_target", "first", "", "A")
	d.AddError("bad", "second", "", "B")
	d.AddInfo("note", "third", "", "C")

	p := d.Promote()

	assert.Len(t, p.Errors, 2)
	assert.Empty(t, p.Warnings)
	assert.Len(t, p.Infos, 1)
	assert.Equal(t, []string{"bad", "unmapped_target", "note"}, p.Codes())

	for _, e := range p.Errors {
		assert.Equal(t, DiagnosticError, e.Severity)
	}

	// original untouched
	assert.Len(t, d.Warnings, 1)
	assert.Equal(t, DiagnosticWarning, d.Warnings[0].Severity)
}

func TestMerge(t *testing.T) {
	a := &Diagnostics{}
	a.AddWarning("w", "one", "", "")

	b := &Diagnostics{}
	b.AddError("e", "two", "", "")
	b.AddInfo("i", "three", "", "")

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, []string{"e", "w", "i"}, a.Codes())
}
