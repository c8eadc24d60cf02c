package tool

import "flag"

// Flags holds runtime overrides from CLI flags.
type Flags struct {
	Log           string
	UseConfigPath string
	UseListen     string
	UseOwner      string
	UseRepo       string
	Resolve       string
	Probe         bool
}

// ParseFlags parses args (without the program name) into Flags.
func ParseFlags(args []string) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet("portfolio-resolver", flag.ContinueOnError)
	fs.StringVar(&f.Log, "log", "", "log mode: dev|prod|none")
	fs.StringVar(&f.UseConfigPath, "useConfigPath", "", "override config file path")
	fs.StringVar(&f.UseListen, "useListen", "", "override API listen address")
	fs.StringVar(&f.UseOwner, "useOwner", "", "override repository owner")
	fs.StringVar(&f.UseRepo, "useRepo", "", "override repository name")
	fs.StringVar(&f.Resolve, "resolve", "", "resolve one category (resume|cover-letter|achievements|profile), print JSON and exit")
	fs.BoolVar(&f.Probe, "probe", false, "ping the API host and exit")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}
