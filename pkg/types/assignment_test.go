// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssignmentType(t *testing.T) {
	tests := []struct {
		label string
		want  AssignmentType
	}{
		{"Writing Assignment", TypeWriting},
		{"Quiz/Test", TypeQuizTest},
		{"Presentation", TypePresentation},
		{"presentation", TypeGeneral},
		{"Lab Notebook", TypeGeneral},
		{"", TypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAssignmentType(tt.label))
		})
	}
}

func TestAssignmentTypesAreValid(t *testing.T) {
	assert.Len(t, AssignmentTypes, 6)
	for _, at := range AssignmentTypes {
		assert.True(t, at.Valid(), string(at))
	}
}
