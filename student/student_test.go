package student

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStudent(buf *bytes.Buffer) *Student {
	s := New("97524698", "reza", 20)
	s.SetOutput(buf)
	return s
}

func TestActionNumberOne(t *testing.T) {
	var buf bytes.Buffer
	s := newTestStudent(&buf)

	s.ActionNumberOne()

	assert.Equal(t, "1 Student details Student { name: IUST_reza, age: 20, studentId: 97524698 }\n", buf.String())
	assert.Equal(t, "IUST_reza", s.Name())
	assert.Equal(t, 20, s.Age())
	assert.Equal(t, "97524698", s.StudentID())
}

func TestActionNumberTwoAfterOne(t *testing.T) {
	var buf bytes.Buffer
	s := newTestStudent(&buf)
	s.ActionNumberOne()
	buf.Reset()

	s.ActionNumberTwo()

	assert.Equal(t, "2 Student information Student { name: IUST_reza, age: 32, studentId: 97524698 }\n", buf.String())
	assert.Equal(t, 32, s.Age())
}

func TestActionNumberOnePrefixesEveryCall(t *testing.T) {
	var buf bytes.Buffer
	s := newTestStudent(&buf)

	s.ActionNumberOne()
	s.ActionNumberOne()

	assert.Equal(t, "IUST_IUST_reza", s.Name())
	assert.Contains(t, buf.String(), "name: IUST_IUST_reza, ")
}

func TestActionsKeepStudentID(t *testing.T) {
	var buf bytes.Buffer
	s := newTestStudent(&buf)
	s.ActionNumberOne()
	s.ActionNumberTwo()
	s.ActionNumberOne()
	assert.Equal(t, "97524698", s.StudentID())
}

func TestAccessorsRoundTrip(t *testing.T) {
	s := New("", "", 0)

	for _, id := range []string{"", "97524698", "x y z"} {
		s.SetStudentID(id)
		assert.Equal(t, id, s.StudentID())
	}
	for _, name := range []string{"", "reza", "IUST_reza"} {
		s.SetName(name)
		assert.Equal(t, name, s.Name())
	}
	for _, age := range []int{-1, 0, 20, 32, 1 << 30} {
		s.SetAge(age)
		assert.Equal(t, age, s.Age())
	}
}

func TestNewAcceptsAnyInput(t *testing.T) {
	s := New("", "", -7)
	assert.Equal(t, "", s.StudentID())
	assert.Equal(t, "", s.Name())
	assert.Equal(t, -7, s.Age())
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	Run(&buf)

	want := "1 Student details Student { name: IUST_reza, age: 20, studentId: 97524698 }\n" +
		"2 Student information Student { name: IUST_reza, age: 32, studentId: 97524698 }\n"
	require.Equal(t, want, buf.String())
}
