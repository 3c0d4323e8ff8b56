package punch

import "time"

// Status classifies a single punch against the checkpoint schedule. The
// values are the labels shown in the spreadsheet and the dashboard.
type Status string

const (
	StatusIncomplete   Status = "Incompleto"
	StatusCorrectEntry Status = "Entrada Correta"
	StatusBreakStarted Status = "Intervalo Iniciado"
	StatusBreakEnded   Status = "Intervalo Finalizado"
	StatusCorrectExit  Status = "Saida Correta"
	StatusIrregular    Status = "Irregular"
)

// Punch is one attendance event produced by the clock-in terminal or typed
// into the spreadsheet by hand. Timestamp is the zero time when the cell was
// empty or unparseable. Status is derived on load and never persisted.
type Punch struct {
	Nome      string
	Cargo     string
	Timestamp time.Time
	Status    Status
}

// HasTimestamp reports whether the punch carries a usable timestamp.
func (p Punch) HasTimestamp() bool {
	return !p.Timestamp.IsZero()
}
