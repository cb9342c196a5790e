/*
Package runner provides the consoles a Parley dialogue talks through.

# Key Components

  - TextHandler: plain lines over an io.Reader and io.Writer, for terminals and pipes.
    Options are rendered as "[ label ]".
  - JSONHandler: NDJSON for headless automation. Every output line is an object
    with "type" and "text"; every input line is a JSON string or plain text.
  - CheckInput: size limit, UTF-8 validation and a control character check.
    A failing line is reported as domain.ErrRejectedInput, never rewritten.

Both handlers read through a background pump, so a blocked read is abandoned
as soon as the context is cancelled.

# Usage

	console := runner.NewTextHandler(os.Stdin, os.Stdout, runner.WithPrompt("> "))
	d := parley.New(parley.WithConsole(console))
*/
package runner
