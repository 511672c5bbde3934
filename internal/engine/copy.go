package engine

// ============================================================================
// Selection Clipboard
// ============================================================================

// Copy puts the selected text on the clipboard. The document and the
// selection are unchanged.
func (e *Editor) Copy() error {
	if !e.sel.Active {
		e.SetStatus("Select text first")
		return ErrNothingToCopy
	}
	e.copySelection()
	e.Statusf("Copied: %d line(s)", e.clip.Len())
	return nil
}

// copySelection stores the selected span. A failed mirror to the system
// clipboard is logged only.
func (e *Editor) copySelection() {
	lo, hi := e.sel.Range()
	if err := e.clip.Set(e.buf.TextRange(lo, hi)); err != nil {
		e.log.Warn("clipboard mirror failed: %v", err)
	}
}

// Cut copies the selection and then deletes it.
func (e *Editor) Cut() error {
	if err := e.writable(); err != nil {
		return err
	}
	if err := e.Copy(); err != nil {
		return err
	}
	e.checkpoint()
	e.deleteSelection()
	e.follow()
	return nil
}

// Paste inserts the clipboard at the cursor, replacing an active
// selection. A single fragment is spliced in place. Several fragments
// are typed in, with a line break before each fragment after the first,
// so long pastes get the same per-word undo steps as typing.
func (e *Editor) Paste() error {
	if err := e.writable(); err != nil {
		return err
	}
	if e.clip.IsEmpty() {
		e.SetStatus("Clipboard empty")
		return ErrClipboardEmpty
	}
	e.checkpoint()
	if e.sel.Active {
		e.deleteSelection()
	}

	frags := e.clip.Fragments()
	if len(frags) == 1 {
		p := e.buf.InsertString(e.cur.Point(), frags[0])
		e.cur = e.cur.MoveTo(e.buf, p)
		e.touch()
	} else {
		for i, frag := range frags {
			if i > 0 {
				e.splitLine()
			}
			e.hist.Join()
			e.typeString(frag)
		}
	}
	e.hist.Break()

	e.clearSelection()
	e.follow()
	e.SetStatus("Pasted")
	return nil
}

// typeString types s one byte at a time.
func (e *Editor) typeString(s string) {
	for i := 0; i < len(s); i++ {
		e.typeChar(s[i])
	}
}

// ============================================================================
// Cut Buffer
// ============================================================================

// CutToEndOfLine moves the text from the cursor to the end of the line
// onto the cut buffer. When that leaves the line empty and it is not the
// only line, the line is removed and the cursor goes to the end of the
// previous line. Consecutive calls accumulate.
func (e *Editor) CutToEndOfLine() error {
	if err := e.writable(); err != nil {
		return err
	}
	e.checkpoint()

	p := e.cur.Point()
	e.cut.Append(e.buf.Line(p.Row).Suffix(p.Col))
	e.buf.DeleteRange(p, Point{Row: p.Row, Col: e.buf.LineLen(p.Row)})

	if e.buf.LineLen(p.Row) == 0 && e.buf.RemoveLine(p.Row) {
		if p.Row > 0 {
			row := p.Row - 1
			p = Point{Row: row, Col: e.buf.LineLen(row)}
		} else {
			p = Point{}
		}
	}
	e.cur = e.cur.MoveTo(e.buf, p)
	e.clearSelection()
	e.touch()
	e.follow()
	e.SetStatus("Line cut (Ctrl+U to paste)")
	return nil
}

// PasteCutBuffer inserts every cut fragment, each but the last followed by
// a line break, and empties the cut buffer.
func (e *Editor) PasteCutBuffer() error {
	if err := e.writable(); err != nil {
		return err
	}
	if e.cut.IsEmpty() {
		e.SetStatus("Cut buffer empty")
		return ErrCutBufferEmpty
	}
	e.checkpoint()
	if e.sel.Active {
		e.deleteSelection()
	}

	frags := e.cut.Take()
	for i, frag := range frags {
		e.hist.Join()
		e.typeString(frag)
		if i < len(frags)-1 {
			e.splitLine()
		}
	}
	e.hist.Break()

	e.follow()
	e.SetStatus("Pasted")
	return nil
}
