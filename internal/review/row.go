// Package review provides case pairing, navigation, annotation and CSV
// persistence for photo backcheck reviews.
package review

// Well-known field names in the input and output files.
const (
	FieldCaseID     = "caseid"
	FieldFrontImage = "front_image"
	FieldStatus     = "status"
)

// Status is the reviewer's verdict for a pair.
type Status string

const (
	StatusCorrect Status = "Correct"
	StatusWrong   Status = "Wrong"
)

// Valid reports whether s is one of the recognised verdicts.
func (s Status) Valid() bool {
	return s == StatusCorrect || s == StatusWrong
}

// Row is a single record from the input file. Field order follows the
// source header; fields added later are appended.
type Row struct {
	fields []string
	values map[string]string
}

// NewRow creates a row with the given field order and values.
// Fields missing from values read as empty strings.
func NewRow(fields []string, values map[string]string) *Row {
	r := &Row{
		fields: append([]string(nil), fields...),
		values: make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		r.values[f] = values[f]
	}
	return r
}

// Fields returns the row's field names in output order.
func (r *Row) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Get returns the value of a field, or "" if the row has no such field.
func (r *Row) Get(field string) string {
	return r.values[field]
}

// Has reports whether the row carries the named field.
func (r *Row) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Set assigns a field value, appending the field if it is new.
func (r *Row) Set(field, value string) {
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

// CaseID returns the grouping key.
func (r *Row) CaseID() string {
	return r.values[FieldCaseID]
}

// ImagePath returns the raw image path as written in the source.
func (r *Row) ImagePath() string {
	return r.values[FieldFrontImage]
}

// Status returns the recorded verdict. ok is false for unreviewed rows.
func (r *Row) Status() (Status, bool) {
	s := r.values[FieldStatus]
	return Status(s), s != ""
}

// Pair is the two rows sharing one case identifier.
type Pair [2]*Row

// CaseID returns the identifier shared by both rows.
func (p Pair) CaseID() string {
	return p[0].CaseID()
}

// Status returns the pair's verdict, taken from its first row.
func (p Pair) Status() (Status, bool) {
	return p[0].Status()
}
