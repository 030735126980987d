// SPDX-License-Identifier: MIT

package irt

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrate/objective"
)

const methodValidate = "Responses.Validate"

// ErrShapeMismatch indicates Answered and Correct are not aligned
// rectangular arrays of the same shape.
var ErrShapeMismatch = errors.New("irt: response arrays shape mismatch")

// Responses is a sparse record of answers: row s lists the questions student
// s answered (Answered[s][k]) and whether each was correct (Correct[s][k]).
// Both arrays are students × responses-per-student.
type Responses struct {
	Answered [][]int
	Correct  [][]bool
}

// Shape returns (students, responses per student) as given by Answered.
func (r Responses) Shape() (students, perStudent int) {
	students = len(r.Answered)
	if students > 0 {
		perStudent = len(r.Answered[0])
	}
	return students, perStudent
}

// Validate checks that both arrays have the same rectangular shape and
// that no question index is negative. Upper bounds depend on the parameter
// vector and are checked at evaluation time.
func (r Responses) Validate() error {
	students, per := r.Shape()
	if len(r.Correct) != students {
		return fmt.Errorf("%s: %d answered rows vs %d correct rows: %w",
			methodValidate, students, len(r.Correct), ErrShapeMismatch)
	}
	for s := 0; s < students; s++ {
		if len(r.Answered[s]) != per || len(r.Correct[s]) != per {
			return fmt.Errorf("%s: row %d has %d/%d cells, want %d: %w",
				methodValidate, s, len(r.Answered[s]), len(r.Correct[s]), per, ErrShapeMismatch)
		}
		for _, q := range r.Answered[s] {
			if q < 0 {
				return objective.IndexError(methodValidate, q, 0)
			}
		}
	}

	return nil
}

// MaxQuestion returns the largest answered question index, or −1 if there are none.
func (r Responses) MaxQuestion() int {
	maxQ := -1
	for _, row := range r.Answered {
		for _, q := range row {
			if q > maxQ {
				maxQ = q
			}
		}
	}
	return maxQ
}

// clone deep-copies r so closures own their observation data.
func (r Responses) clone() Responses {
	out := Responses{
		Answered: make([][]int, len(r.Answered)),
		Correct:  make([][]bool, len(r.Correct)),
	}
	for s := range r.Answered {
		out.Answered[s] = append([]int(nil), r.Answered[s]...)
		out.Correct[s] = append([]bool(nil), r.Correct[s]...)
	}
	return out
}
