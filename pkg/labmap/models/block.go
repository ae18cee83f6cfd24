package models

// BlockKind classifies a logical record block found in a source sheet.
type BlockKind int

const (
	// Unclassified means no block starts at the scanned position.
	Unclassified BlockKind = iota
	// DateStamp is a single merged row carrying the measurement date.
	DateStamp
	// RecordHeader is a three-row measurement entry keyed by a column-0 merge.
	RecordHeader
	// PlainRecord is one data row, or several when its free-text cell is merged down.
	PlainRecord
)

func (k BlockKind) String() string {
	switch k {
	case DateStamp:
		return "date_stamp"
	case RecordHeader:
		return "record_header"
	case PlainRecord:
		return "plain_record"
	default:
		return "unclassified"
	}
}

// HeaderFieldCount is the number of fields carried by a record header and a plain record.
const HeaderFieldCount = 4

// LogicalBlock is the classification result for one source position.
type LogicalBlock struct {
	Kind BlockKind
	// RowStart and RowEnd bound the consumed source rows (inclusive).
	RowStart int
	RowEnd   int
	// Text is the date stamp text; empty for other kinds.
	Text string
	// Fields holds columns 0-3 of the first block row, merges resolved.
	Fields [HeaderFieldCount]string
	// Next is the source row where scanning resumes.
	Next int
}

// Rows returns the number of source rows consumed by the block.
func (b LogicalBlock) Rows() int {
	if b.Kind == Unclassified {
		return 0
	}
	return b.RowEnd - b.RowStart + 1
}

// Cursor is the next free row of a target sheet. It only moves forward.
type Cursor struct {
	NextRow int
}

// Advance returns the cursor moved down by n rows. Negative n is ignored.
func (c Cursor) Advance(n int) Cursor {
	if n > 0 {
		c.NextRow += n
	}
	return c
}
