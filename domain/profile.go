package domain

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Profile customizes the display name and flavor text of a room.
// Templates may use {user}, {room} and {count}; they never change room semantics.
type Profile struct {
	Name       string `validate:"required,max=64"`
	JoinText   string `validate:"max=256"`
	LeaveText  string `validate:"max=256"`
	CensusText string `validate:"max=256"`
}

var (
	DefaultProfile = Profile{
		Name:      "DefaultRoom",
		JoinText:  "{user} joined chat room: {room}",
		LeaveText: "{user} left chat room: {room}",
	}
	CtrlCat = Profile{
		Name:       "CtrlCat",
		JoinText:   "🐱 {user} has pounced into CtrlCat! Ready to discuss cats and code! 🐱",
		LeaveText:  "🐱 {user} has left CtrlCat. The cat has wandered off to chase other code! 🐱",
		CensusText: "CtrlCat now has {count} coding cats online.",
	}
	Dogorithm = Profile{
		Name:       "Dogorithm",
		JoinText:   "{user} has joined the pack in Dogorithm! Time to fetch some algorithms!",
		LeaveText:  "{user} has left the Dogorithm pack. Another good dev has gone home!",
		CensusText: "Dogorithm pack now has {count} coding companions.",
	}
)

func (p Profile) Validate() error {
	return validate.Struct(p)
}

func (p Profile) JoinMessage(user string, count int) string {
	return p.render(p.JoinText, user, count)
}

func (p Profile) LeaveMessage(user string, count int) string {
	return p.render(p.LeaveText, user, count)
}

func (p Profile) CensusMessage(count int) string {
	return p.render(p.CensusText, "", count)
}

func (p Profile) render(template, user string, count int) string {
	if template == "" {
		return ""
	}
	return strings.NewReplacer(
		"{user}", user,
		"{room}", p.Name,
		"{count}", strconv.Itoa(count),
	).Replace(template)
}

// ValidateDisplayName checks a user display name, names need not be unique.
func ValidateDisplayName(name string) error {
	return validate.Var(name, "required,max=64")
}
