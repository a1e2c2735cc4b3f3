package jobs

// Identifier names a job either by its unique correlator or by the
// jobname and jobid pair. The zero value is invalid.
type Identifier struct {
	correlator string
	name       string
	id         string
}

// Correlator identifies a job by its user or system correlator.
func Correlator(correlator string) Identifier {
	return Identifier{correlator: correlator}
}

// NameID identifies a job by its jobname and jobid.
func NameID(name, id string) Identifier {
	return Identifier{name: name, id: id}
}

// String renders the identifier in the path form the job endpoints
// expect: the correlator verbatim, or "name/id".
func (i Identifier) String() string {
	if i.correlator != "" {
		return i.correlator
	}

	return i.name + "/" + i.id
}

// Job is the scheduling view of a job.
type Job struct {
	ID               string  `json:"jobid"`
	Name             string  `json:"jobname"`
	Subsystem        *string `json:"subsystem,omitempty"`
	Owner            string  `json:"owner"`
	Status           *string `json:"status,omitempty"`
	Type             string  `json:"type"`
	Class            string  `json:"class"`
	ReturnCode       *string `json:"retcode,omitempty"`
	URL              string  `json:"url"`
	FilesURL         string  `json:"files-url"`
	Correlator       *string `json:"job-correlator,omitempty"`
	Phase            int     `json:"phase"`
	PhaseName        string  `json:"phase-name"`
	ReasonNotRunning *string `json:"reason-not-running,omitempty"`
	StepData         []Step  `json:"step-data,omitempty"`
}

// ExecJob is the execution view of a job, adding the system it ran on
// and its lifecycle timestamps.
type ExecJob struct {
	Job

	ExecSystem    *string `json:"exec-system,omitempty"`
	ExecMember    *string `json:"exec-member,omitempty"`
	ExecSubmitted *string `json:"exec-submitted,omitempty"`
	ExecStarted   *string `json:"exec-started,omitempty"`
	ExecEnded     *string `json:"exec-ended,omitempty"`
}

// Step is one entry of a job's step data.
type Step struct {
	Active         bool    `json:"active"`
	SMFID          *string `json:"smfid,omitempty"`
	StepNumber     int     `json:"step-number"`
	ProcStepName   string  `json:"proc-step-name"`
	StepName       string  `json:"step-name"`
	ProgramName    string  `json:"program-name"`
	CompletionCode *string `json:"completion,omitempty"`
}

// File is one spool file of a job.
type File struct {
	ID          int     `json:"id"`
	DDName      string  `json:"ddname"`
	StepName    *string `json:"stepname,omitempty"`
	ProcStep    *string `json:"procstep,omitempty"`
	Class       string  `json:"class"`
	RecordCount int     `json:"record-count"`
	ByteCount   int     `json:"byte-count"`
	RecordsURL  string  `json:"records-url"`
	Subsystem   *string `json:"subsystem,omitempty"`
	LRecL       int     `json:"lrecl"`
	RecFM       string  `json:"recfm"`
}

// Feedback is the server's report on a lifecycle action.
type Feedback struct {
	ID           string  `json:"jobid"`
	Name         string  `json:"jobname"`
	OriginalID   *string `json:"original-jobid,omitempty"`
	Owner        string  `json:"owner"`
	Member       string  `json:"member"`
	SystemName   string  `json:"sysname"`
	Correlator   *string `json:"job-correlator,omitempty"`
	Status       string  `json:"status"`
	InternalCode *string `json:"internal-code,omitempty"`
	Message      *string `json:"message,omitempty"`
}
