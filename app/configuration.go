package main

import (
	"io"
	"os"
)

type Configuration struct {
	scenario string
	color    bool
	out      io.Writer
}

// Creates a configuration that runs the built-in scenario, in color, to stdout.
func Configure() *Configuration {
	return &Configuration{
		color: true,
		out:   os.Stdout,
	}
}

// Path of a YAML scenario file. An empty path selects the built-in
// scenario.
// [""]
func (c *Configuration) Scenario(path string) *Configuration {
	c.scenario = path
	return c
}

// Whether headers are colored.
// [true]
func (c *Configuration) Color(enabled bool) *Configuration {
	c.color = enabled
	return c
}

// Where container dumps are written.
// [os.Stdout]
func (c *Configuration) Output(w io.Writer) *Configuration {
	c.out = w
	return c
}
