// Package cliutil holds small presentation helpers shared by the command
// line front ends.
package cliutil

import "github.com/fatih/color"

func Green(s string) string  { return sprint(color.FgHiGreen, s) }
func Red(s string) string    { return sprint(color.FgHiRed, s) }
func Yellow(s string) string { return sprint(color.FgHiYellow, s) }
func Cyan(s string) string   { return sprint(color.FgHiCyan, s) }

func sprint(attr color.Attribute, s string) string {
	c := color.New(attr)
	c.EnableColor()
	return c.SprintFunc()(s)
}
