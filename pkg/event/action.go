package event

import "fmt"

// Action is a semantic outcome reported upward by event handling.
// A nil Action means nothing happened.
type Action interface {
	isAction()
	String() string
}

// Clicked reports that the widget identified by ID was activated.
type Clicked struct {
	ID string
}

// ValueChanged reports a new value for the widget identified by ID.
type ValueChanged struct {
	ID    string
	Value any
}

// Custom carries an application-defined action.
type Custom struct {
	Name    string
	Payload any
}

func (Clicked) isAction()      {}
func (ValueChanged) isAction() {}
func (Custom) isAction()       {}

func (a Clicked) String() string {
	return fmt.Sprintf("Clicked(%s)", a.ID)
}

func (a ValueChanged) String() string {
	return fmt.Sprintf("ValueChanged(%s=%v)", a.ID, a.Value)
}

func (a Custom) String() string {
	return fmt.Sprintf("Custom(%s)", a.Name)
}
