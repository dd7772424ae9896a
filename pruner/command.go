package pruner

// Command is an instruction to the Worker.
type Command interface {
	command()
}

type quitCommand struct{}

type pruneCommand struct {
	targets []OptionalVersion
}

func (quitCommand) command()  {}
func (pruneCommand) command() {}

// Quit terminates the Worker.
func Quit() Command {
	return quitCommand{}
}

// Prune sets new target versions, indexed by Domain. Absent targets and
// targets of disabled domains are ignored.
func Prune(targets ...OptionalVersion) Command {
	return pruneCommand{targets: targets}
}
