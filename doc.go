/*
Package parley is a small interactive dialogue-tree player.

A Dialogue is a directed graph of nodes keyed by domain.NodeID. Each node
displays its content and reports which node comes next. Traversal always
starts at domain.Entry (1) and stops when a node returns domain.Terminal (0)
or when the next id has no node behind it.

Two node kinds ship in package nodes: a Line with a fixed successor, and a
Choice that lists its options, reads one line of input and branches on the
selected label.

# Usage

	d := parley.New(parley.WithConsole(runner.NewTextHandler(os.Stdin, os.Stdout)))

	d.InsertNode(1, nodes.NewLine("Hello there."))
	ask := nodes.NewChoice("Are you well?")
	ask.InsertOption("yes", 3)
	ask.InsertOption("no", 4)
	d.InsertNode(2, ask)
	d.InsertNode(3, nodes.NewLine("Glad to hear it."))
	d.InsertNode(4, nodes.NewLine("Sorry to hear that."))
	d.ConnectNodes(1, 2)

	if err := d.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

A Dialogue is built first and traversed afterwards. Mutating it while Run is
in progress is not supported, and it is not safe for concurrent use.
*/
package parley
