// Package student holds the student record used as the input of the
// extract method refactoring.
package student

import (
	"fmt"
	"io"
	"os"
)

// NamePrefix is prepended to the name by ActionNumberOne.
const NamePrefix = "IUST_"

// Student is a plain record. Nothing is validated.
type Student struct {
	studentID string
	name      string
	age       int
	out       io.Writer
}

// New returns a student printing to stdout.
func New(studentID, name string, age int) *Student {
	return &Student{
		studentID: studentID,
		name:      name,
		age:       age,
		out:       os.Stdout,
	}
}

// SetOutput sets the destination of the action summaries.
func (s *Student) SetOutput(w io.Writer) {
	s.out = w
}

func (s *Student) StudentID() string { return s.studentID }

func (s *Student) SetStudentID(studentID string) { s.studentID = studentID }

func (s *Student) Name() string { return s.name }

func (s *Student) SetName(name string) { s.name = name }

func (s *Student) Age() int { return s.age }

func (s *Student) SetAge(age int) { s.age = age }

// ActionNumberOne prefixes the name with NamePrefix and prints the details.
// The prefix is added on every call.
func (s *Student) ActionNumberOne() {
	s.name = NamePrefix + s.name
	fmt.Fprint(s.out, "1 ")
	fmt.Fprint(s.out, "Student details ")
	s.printRecord()
}

// ActionNumberTwo sets the age to 32 and prints the information.
func (s *Student) ActionNumberTwo() {
	s.age = 32
	fmt.Fprint(s.out, "2 ")
	fmt.Fprint(s.out, "Student information ")
	s.printRecord()
}

func (s *Student) printRecord() {
	fmt.Fprint(s.out, "Student { ")
	fmt.Fprint(s.out, "name: "+s.name+", ")
	fmt.Fprintf(s.out, "age: %d, ", s.age)
	fmt.Fprint(s.out, "studentId: "+s.studentID+" }\n")
}

// Run builds the sample student and runs both actions in order.
func Run(w io.Writer) {
	reza := New("97524698", "reza", 20)
	reza.SetOutput(w)
	reza.ActionNumberOne()
	reza.ActionNumberTwo()
}
