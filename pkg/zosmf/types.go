package zosmf

// Content constrains the representations a read or write endpoint can carry:
// text is surfaced as string, binary and record data as []byte. The type
// parameter on a builder selects the decoding rule at compile time.
type Content interface {
	~string | ~[]byte
}

// DataType selects how z/OSMF transfers file and dataset content. It is
// rendered into the X-IBM-Data-Type request header, optionally combined
// with a file encoding as "value;fileEncoding=charset".
type DataType string

const (
	DataTypeBinary DataType = "binary"
	DataTypeRecord DataType = "record"
	DataTypeText   DataType = "text"
)

// MigratedRecall controls how z/OSMF handles migrated datasets, via the
// X-IBM-Migrated-Recall request header.
type MigratedRecall string

const (
	MigratedRecallError  MigratedRecall = "error"
	MigratedRecallNoWait MigratedRecall = "nowait"
	MigratedRecallWait   MigratedRecall = "wait"
)

// ObtainEnq requests a serialization ENQ on the target dataset, via the
// X-IBM-Obtain-ENQ request header.
type ObtainEnq string

const (
	ObtainEnqExclusive       ObtainEnq = "EXCLU"
	ObtainEnqSharedReadWrite ObtainEnq = "SHRW"
)

// Logger is the structured logging interface consumed by the transport
// layer. Implementations adapt whatever logger the application uses.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
