package cli

import (
	"bytes"
)

// ExecuteLocate runs the locate command with the given arguments and returns its output. It's
// primarily intended for testing purposes
func ExecuteLocate(args ...string) (output []byte, err error) {
	cmdOpts = CommandOptions{}
	logLevel = ``
	configPath = ``

	cmd := NewCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return buf.Bytes(), err
}
