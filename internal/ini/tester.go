package ini

// Tester is the [Tester] section driving a Strategy Tester run or optimisation.
type Tester struct {
	ExecutionMode    *int
	Criterion        *int
	ForwardMode      *int
	Port             *int
	ReplaceReport    *bool
	UseLocal         *bool
	UseRemote        *bool
	UseCloud         *bool
	Visual           *bool
	Shutdown         *bool
	Expert           string
	ExpertParameters string
	Symbol           string
	Period           string
	Login            string
	FromDate         string
	ToDate           string
	ForwardDate      string
	Report           string
	Deposit          string
	Currency         string
	Leverage         string
	Model            int
	Optimization     int
}

func (t Tester) String() string {
	sec := newSection("Tester")
	sec.set("Expert", Escape(t.Expert))
	sec.setString("ExpertParameters", Escape(t.ExpertParameters))
	sec.set("Symbol", t.Symbol)
	sec.set("Period", t.Period)
	sec.setString("Login", t.Login)
	sec.setInt("Model", &t.Model)
	sec.setInt("ExecutionMode", t.ExecutionMode)
	sec.setInt("Optimization", &t.Optimization)
	sec.setInt("OptimizationCriterion", t.Criterion)
	sec.setString("FromDate", t.FromDate)
	sec.setString("ToDate", t.ToDate)
	sec.setInt("ForwardMode", t.ForwardMode)
	sec.setString("ForwardDate", t.ForwardDate)
	sec.setString("Report", Escape(NormalizeReport(t.Report)))
	sec.setBool("ReplaceReport", t.ReplaceReport)
	sec.setString("Deposit", t.Deposit)
	sec.setString("Currency", t.Currency)
	sec.setString("Leverage", t.Leverage)
	sec.setBool("UseLocal", t.UseLocal)
	sec.setBool("UseRemote", t.UseRemote)
	sec.setBool("UseCloud", t.UseCloud)
	sec.setBool("Visual", t.Visual)
	sec.setInt("Port", t.Port)
	sec.setBool("ShutdownTerminal", t.Shutdown)
	return sec.String()
}
