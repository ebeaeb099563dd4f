package buffer

// Position addresses a character in the document. Row is a line index in
// [0, lineCount); Col is a character offset in [0, len(line)], where the
// offset one past the last character is valid.
type Position struct {
	Row int
	Col int
}

// Before reports whether p precedes q in row-major order.
func (p Position) Before(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// After reports whether p follows q in row-major order.
func (p Position) After(q Position) bool {
	return q.Before(p)
}
