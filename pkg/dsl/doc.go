/*
Package dsl provides a fluent builder for Parley dialogues.

It is a thin loader over the construction API of parley.Dialogue: every node
declared here becomes an InsertNode call and every Go becomes a ConnectNodes
call. Any other source of dialogue
data (a file format, a database) can populate a graph the same way.

Example usage:

	b := dsl.New(dsl.WithMaxAttempts(3))

	b.Line(1, "Welcome, traveller.").Go(2)

	b.Choice(2, "Where do you want to go?").
		Option("town", 3).
		Option("forest", 4)

	b.Line(3, "The town is busy today.")
	b.Line(4, "The forest is quiet.")

	d, err := b.Build(parley.WithConsole(console))
	if err != nil {
		log.Fatal(err)
	}
	_ = d.Run(ctx)
*/
package dsl
