// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// StoredDraft is a draft persisted for one assignment of one course.
// There is at most one StoredDraft per (CourseID, AssignmentID) pair.
type StoredDraft struct {
	// ID is a random UUID assigned on first save.
	ID string `json:"id" yaml:"id"`

	// CourseID identifies the LMS course.
	CourseID int64 `json:"courseId" yaml:"course_id"`

	// AssignmentID identifies the assignment within the course.
	AssignmentID int64 `json:"assignmentId" yaml:"assignment_id"`

	// AssignmentType is the label the draft was generated for, if known.
	AssignmentType AssignmentType `json:"assignmentType,omitempty" yaml:"assignment_type,omitempty"`

	// Content is the Markdown draft body.
	Content string `json:"content" yaml:"content"`

	// CreatedAt is set on first save and never changes.
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`

	// UpdatedAt is refreshed on every save.
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at"`

	// Submitted records whether the draft has been handed in.
	Submitted bool `json:"submitted" yaml:"submitted"`
}
