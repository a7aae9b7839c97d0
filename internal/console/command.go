package console

// Command is a console subcommand selected by its Name.
type Command interface {
	Name() string
	Description() string
	Run() error
}
