package ini

// StartUp is the [StartUp] section: the chart, program and template the terminal opens
// with. Empty strings and nil pointers are omitted.
type StartUp struct {
	Shutdown         *bool
	Expert           string
	Script           string
	ExpertParameters string
	ScriptParameters string
	Symbol           string
	Period           string
	Template         string
}

func (s StartUp) String() string {
	sec := newSection("StartUp")
	sec.setString("Expert", Escape(s.Expert))
	sec.setString("Script", Escape(s.Script))
	sec.setString("ExpertParameters", Escape(s.ExpertParameters))
	sec.setString("ScriptParameters", Escape(s.ScriptParameters))
	sec.setString("Symbol", s.Symbol)
	sec.setString("Period", s.Period)
	sec.setString("Template", Escape(s.Template))
	sec.setBool("ShutdownTerminal", s.Shutdown)
	return sec.String()
}

// Empty reports whether nothing would be opened, in which case no config file is needed.
func (s StartUp) Empty() bool {
	return s.Expert == "" && s.Script == "" && s.Symbol == "" && s.Period == "" && s.Template == ""
}
