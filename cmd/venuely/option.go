package venuely

// Options is the root command that groups sub-commands. The struct tags are
// interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config  string `short:"f" long:"config" description:"config YAML path or URL (defaults to <workspace>/config.yaml)"`
	Diag    bool   `long:"diag" description:"stream diagnostic events as JSON lines to stderr"`
	Version bool   `short:"v" long:"version" description:"print version and exit"`

	List    *ListCmd    `command:"list" description:"List venues"`
	Show    *ShowCmd    `command:"show" description:"Show venue details"`
	Create  *CreateCmd  `command:"create" description:"Create a venue"`
	Update  *UpdateCmd  `command:"update" description:"Update a venue"`
	Delete  *DeleteCmd  `command:"delete" description:"Delete a venue"`
	Cache   *CacheCmd   `command:"cache" description:"Inspect or clear the local cache"`
	Console *ConsoleCmd `command:"console" description:"Interactive venue management console"`
	Serve   *ServeCmd   `command:"serve" description:"Start the reference venue HTTP server"`
}

// Init instantiates the sub-command referenced by the first argument so that
// flags.Parse can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "list":
		o.List = &ListCmd{}
	case "show":
		o.Show = &ShowCmd{}
	case "create":
		o.Create = &CreateCmd{}
	case "update":
		o.Update = &UpdateCmd{}
	case "delete":
		o.Delete = &DeleteCmd{}
	case "cache":
		o.Cache = &CacheCmd{}
	case "console":
		o.Console = &ConsoleCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
